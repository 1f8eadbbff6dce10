package preferences

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mapStore struct {
	data   map[string]string
	writes []string
	err    error
}

func newMapStore() *mapStore {
	return &mapStore{data: make(map[string]string)}
}

func (m *mapStore) Get(ctx context.Context, visitorID, key string) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	v, ok := m.data[visitorID+"/"+key]
	return v, ok, nil
}

func (m *mapStore) Set(ctx context.Context, visitorID, key, value string) error {
	m.writes = append(m.writes, key)
	m.data[visitorID+"/"+key] = value
	return nil
}

func ptr[T any](v T) *T { return &v }

func TestLoad_Defaults(t *testing.T) {
	svc := NewService(newMapStore())
	s, err := svc.Load(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestLoad_ReadsStoredEncoding(t *testing.T) {
	store := newMapStore()
	store.data["v1/theme"] = "dark"
	store.data["v1/contrast"] = "high"
	store.data["v1/fontSize"] = "400"
	store.data["v1/anna-portfolio-consent"] = "true"

	s, err := NewService(store).Load(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, Settings{Theme: ThemeDark, FontScale: MaxFontScale, HighContrast: true, CookieConsent: true}, s)
}

func TestLoad_StoreError(t *testing.T) {
	store := newMapStore()
	store.err = errors.New("connection refused")

	s, err := NewService(store).Load(context.Background(), "v1")
	assert.Error(t, err)
	assert.Equal(t, Defaults(), s)
}

func TestUpdate_WritesOnlyChangedKeys(t *testing.T) {
	store := newMapStore()
	svc := NewService(store)

	s, err := svc.Update(context.Background(), "v1", Patch{Theme: ptr(ThemeDark)})
	require.NoError(t, err)
	assert.Equal(t, ThemeDark, s.Theme)
	assert.Equal(t, []string{KeyTheme}, store.writes)

	store.writes = nil
	_, err = svc.Update(context.Background(), "v1", Patch{Theme: ptr(ThemeDark)})
	require.NoError(t, err)
	assert.Empty(t, store.writes, "unchanged values are not rewritten")
}

func TestUpdate_ClampsFontScale(t *testing.T) {
	svc := NewService(newMapStore())

	s, err := svc.Update(context.Background(), "v1", Patch{FontScale: ptr(10)})
	require.NoError(t, err)
	assert.Equal(t, MinFontScale, s.FontScale)

	s, err = svc.Load(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, MinFontScale, s.FontScale)
}

func TestUpdate_InvalidTheme(t *testing.T) {
	_, err := NewService(newMapStore()).Update(context.Background(), "v1", Patch{Theme: ptr("sepia")})
	assert.ErrorIs(t, err, ErrInvalidTheme)
}

func TestUpdate_ConsentIsSticky(t *testing.T) {
	svc := NewService(newMapStore())
	_, err := svc.Update(context.Background(), "v1", Patch{CookieConsent: ptr(true)})
	require.NoError(t, err)

	s, err := svc.Update(context.Background(), "v1", Patch{CookieConsent: ptr(false)})
	require.NoError(t, err)
	assert.True(t, s.CookieConsent)
}

func TestReset_KeepsConsent(t *testing.T) {
	svc := NewService(newMapStore())
	_, err := svc.Update(context.Background(), "v1", Patch{
		Theme:         ptr(ThemeDark),
		FontScale:     ptr(130),
		HighContrast:  ptr(true),
		CookieConsent: ptr(true),
	})
	require.NoError(t, err)

	s, err := svc.Reset(context.Background(), "v1")
	require.NoError(t, err)
	assert.Equal(t, Settings{Theme: ThemeLight, FontScale: DefaultFontScale, CookieConsent: true}, s)
}

func TestFontSteps(t *testing.T) {
	s := Defaults()
	for i := 0; i < 10; i++ {
		s = s.IncreaseFont()
	}
	assert.Equal(t, MaxFontScale, s.FontScale)
	for i := 0; i < 10; i++ {
		s = s.DecreaseFont()
	}
	assert.Equal(t, MinFontScale, s.FontScale)
}
