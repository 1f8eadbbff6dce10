package briefing

// Choices offered by the form. Values are not restricted to these lists.
var (
	Services = []string{
		"Identidade Visual",
		"Social Design",
		"Web Experience",
		"Papelaria Premium",
		"Acompanhamento Mensal",
		"Outro",
	}

	ProjectTypes = []string{
		"Criação do Zero",
		"Redesign / Modernização",
	}

	InvestmentBands = []string{
		"R$ 1.000 - R$ 2.500",
		"R$ 2.500 - R$ 5.000",
		"R$ 5.000 - R$ 10.000",
		"Acima de R$ 10.000",
	}
)
