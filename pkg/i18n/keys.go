package i18n

type Key int

const (
	NavProjects Key = iota
	NavAbout
	NavServices
	NavContact
	HeroTitle
	HeroSubtitle
	HeroSoul
	HeroManifesto
	HeroCTA
	HeroTailored
	HeroCuratorship
	HeroStrategy
	CTABudget
	ProjectsTitle
	ProjectsSubtitle
	AboutPleasure
	AboutIntro
	AboutMission
	AboutVision
	ContactCTA

	PageHomeTitle
	PageBriefingTitle
	PageNotFoundTitle
	PageNotFoundBody

	StepIdentificationTitle
	StepBrandTitle
	StepProjectTitle
	StepAestheticTitle
	StepLogisticsTitle
	StepServiceRequiredHint

	DocTitle
	DocStudio
	DocGeneratedAt
	DocConfidential
	DocNotInformed

	SectionIdentification
	SectionBrand
	SectionProject
	SectionAesthetic
	SectionLogistics

	LabelClient
	LabelBrand
	LabelEmail
	LabelWhatsApp
	LabelInstagram
	LabelHistory
	LabelCompetitors
	LabelDifferentiation
	LabelService
	LabelProjectType
	LabelDeliverables
	LabelPurpose
	LabelAudience
	LabelKeywords
	LabelColors
	LabelReferences
	LabelDeadline
	LabelInvestment

	ShareTitle
	ShareHeader
	ShareGreeting
	ShareClient
	ShareBrand
	ShareService
	ShareAttachNote

	OutcomeShared
	OutcomeFallback
	OutcomeFailed

	ContactGreeting
	ContactIntro
	ContactEmail

	keyCount
)
