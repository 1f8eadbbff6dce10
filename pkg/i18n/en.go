package i18n

var en = table{
	NavProjects:      "Projects",
	NavAbout:         "About",
	NavServices:      "Services",
	NavContact:       "Contact",
	HeroTitle:        "Transforming stories into authentic brands.",
	HeroSubtitle:     "Graphic Designer & Visual Strategist specializing in Visual Identity and Social Media.",
	HeroSoul:         "with soul",
	HeroManifesto:    "\"I transform invisible essences into powerful and intentional visual realities.\"",
	HeroCTA:          "View Portfolio",
	HeroTailored:     "Tailored Creation",
	HeroCuratorship:  "Visual Curatorship",
	HeroStrategy:     "& Strategy",
	CTABudget:        "Request a Quote",
	ProjectsTitle:    "Stories I helped create",
	ProjectsSubtitle: "Every project is a unique journey.",
	AboutPleasure:    "pleasure",
	AboutIntro:       "I am a graphic designer passionate about creating meaningful visual connections. I work beyond aesthetics, seeking the soul of every project.",
	AboutMission:     "To transform essences into powerful identities, combining creativity and strategy.",
	AboutVision:      "To be the benchmark in design that connects brands to hearts authentically.",
	ContactCTA:       "Shall we create something unique?",

	PageHomeTitle:     "Anna Graphic Designer",
	PageBriefingTitle: "Strategic Dossier",
	PageNotFoundTitle: "Page not found",
	PageNotFoundBody:  "The path you were looking for does not exist. How about going back home?",

	StepIdentificationTitle: "Let's start with the essentials",
	StepBrandTitle:          "Your story is what sets you apart",
	StepProjectTitle:        "What are we going to build?",
	StepAestheticTitle:      "The visual soul of the brand",
	StepLogisticsTitle:      "Final details",
	StepServiceRequiredHint: "Choose the main service to continue.",

	DocTitle:        "STRATEGIC BRIEFING",
	DocStudio:       "ANNA GRAPHIC DESIGNER",
	DocGeneratedAt:  "Generated on: %s",
	DocConfidential: "This document is confidential and belongs to Anna Designer's creative process.",
	DocNotInformed:  "Not informed",

	SectionIdentification: "1. Identification",
	SectionBrand:          "2. About the Brand",
	SectionProject:        "3. The Project",
	SectionAesthetic:      "4. Strategy and Aesthetics",
	SectionLogistics:      "5. Logistics",

	LabelClient:          "Client",
	LabelBrand:           "Company/Brand",
	LabelEmail:           "E-mail",
	LabelWhatsApp:        "WhatsApp",
	LabelInstagram:       "Instagram",
	LabelHistory:         "History",
	LabelCompetitors:     "Competitors",
	LabelDifferentiation: "Differentiator",
	LabelService:         "Service",
	LabelProjectType:     "Type",
	LabelDeliverables:    "Deliverables",
	LabelPurpose:         "Goal",
	LabelAudience:        "Audience",
	LabelKeywords:        "Keywords",
	LabelColors:          "Colors/Preferences",
	LabelReferences:      "References",
	LabelDeadline:        "Desired Deadline",
	LabelInvestment:      "Investment",

	ShareTitle:      "Strategic Briefing - Anna Designer",
	ShareHeader:     "✨ *STRATEGIC BRIEFING COMPLETED* ✨",
	ShareGreeting:   "Hi Anna! I have just completed the strategic briefing.",
	ShareClient:     "👤 *Client:* %s",
	ShareBrand:      "🚀 *Project/Brand:* %s",
	ShareService:    "🛠️ *Service:* %s",
	ShareAttachNote: "(I am sending the PDF file as an attachment!)",

	OutcomeShared:   "Briefing shared successfully!",
	OutcomeFallback: "Dossier generated! Now just attach the file on WhatsApp.",
	OutcomeFailed:   "Error while processing the briefing. Please try again.",

	ContactGreeting: "Hi Anna! ✨",
	ContactIntro:    "My name is *%s*.",
	ContactEmail:    "(My contact e-mail is: %s)",
}
