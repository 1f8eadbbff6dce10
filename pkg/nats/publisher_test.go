package nats

import (
	"testing"

	"github.com/annaddsgr/Portfolio/pkg/events"

	"github.com/stretchr/testify/assert"
)

func TestSubject(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{events.BriefingSubmitted, "briefing.submitted"},
		{events.BriefingDelivered, "briefing.delivered"},
		{events.BriefingFailed, "briefing.failed"},
		{"CUSTOM", "briefing.custom"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Subject(tt.in))
	}
}
