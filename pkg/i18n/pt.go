package i18n

var pt = table{
	NavProjects:      "Projetos",
	NavAbout:         "Sobre",
	NavServices:      "Serviços",
	NavContact:       "Contato",
	HeroTitle:        "Transformo histórias em marcas autênticas.",
	HeroSubtitle:     "Designer Gráfico & Estrategista Visual especializada em Identidade Visual e Social Media.",
	HeroSoul:         "com alma",
	HeroManifesto:    "\"Transformo essências invisíveis em realidades visuais potentes e intencionais.\"",
	HeroCTA:          "Ver Portfólio",
	HeroTailored:     "Criação sob Medida",
	HeroCuratorship:  "Curadoria Visual",
	HeroStrategy:     "& Estratégia",
	CTABudget:        "Solicitar Orçamento",
	ProjectsTitle:    "Histórias que ajudei a criar",
	ProjectsSubtitle: "Cada projeto é uma jornada única.",
	AboutPleasure:    "prazer",
	AboutIntro:       "Sou uma designer gráfica apaixonada por criar conexões visuais significativas. Trabalho além da estética, busco a alma de cada projeto.",
	AboutMission:     "Transformar essências em identidades potentes, unindo criatividade e estratégia.",
	AboutVision:      "Ser a referência em design que conecta marcas a corações de forma autêntica.",
	ContactCTA:       "Vamos criar algo único?",

	PageHomeTitle:     "Anna Designer Gráfico",
	PageBriefingTitle: "Dossiê Estratégico",
	PageNotFoundTitle: "Página não encontrada",
	PageNotFoundBody:  "O caminho que você procurou não existe. Que tal voltar ao início?",

	StepIdentificationTitle: "Vamos começar pelo essencial",
	StepBrandTitle:          "Sua história é seu diferencial",
	StepProjectTitle:        "O que vamos construir?",
	StepAestheticTitle:      "A alma visual da marca",
	StepLogisticsTitle:      "Últimos ajustes",
	StepServiceRequiredHint: "Escolha o serviço principal para continuar.",

	DocTitle:        "BRIEFING ESTRATÉGICO",
	DocStudio:       "ANNA DESIGNER GRÁFICO",
	DocGeneratedAt:  "Gerado em: %s",
	DocConfidential: "Este documento é confidencial e pertence ao processo criativo de Anna Designer.",
	DocNotInformed:  "Não informado",

	SectionIdentification: "1. Identificação",
	SectionBrand:          "2. Sobre a Marca",
	SectionProject:        "3. O Projeto",
	SectionAesthetic:      "4. Estratégia e Estética",
	SectionLogistics:      "5. Logística",

	LabelClient:          "Cliente",
	LabelBrand:           "Empresa/Marca",
	LabelEmail:           "E-mail",
	LabelWhatsApp:        "WhatsApp",
	LabelInstagram:       "Instagram",
	LabelHistory:         "História",
	LabelCompetitors:     "Concorrentes",
	LabelDifferentiation: "Diferencial",
	LabelService:         "Serviço",
	LabelProjectType:     "Tipo",
	LabelDeliverables:    "Entregáveis",
	LabelPurpose:         "Objetivo",
	LabelAudience:        "Público-alvo",
	LabelKeywords:        "Palavras-chave",
	LabelColors:          "Cores/Preferências",
	LabelReferences:      "Referências",
	LabelDeadline:        "Prazo Desejado",
	LabelInvestment:      "Investimento",

	ShareTitle:      "Briefing Estratégico - Anna Designer",
	ShareHeader:     "✨ *BRIEFING ESTRATÉGICO FINALIZADO* ✨",
	ShareGreeting:   "Olá Anna! Acabei de concluir o briefing estratégico.",
	ShareClient:     "👤 *Cliente:* %s",
	ShareBrand:      "🚀 *Projeto/Marca:* %s",
	ShareService:    "🛠️ *Serviço:* %s",
	ShareAttachNote: "(Estou enviando o arquivo PDF em anexo!)",

	OutcomeShared:   "Briefing compartilhado com sucesso!",
	OutcomeFallback: "Dossiê gerado! Agora é só anexar o arquivo no WhatsApp.",
	OutcomeFailed:   "Erro ao processar o briefing. Tente novamente.",

	ContactGreeting: "Olá Anna! ✨",
	ContactIntro:    "Me chamo *%s*.",
	ContactEmail:    "(Meu email para contato é: %s)",
}
