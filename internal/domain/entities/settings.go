package entities

// PlatformSettings is the admin-managed platform configuration snapshot.
// Operations read it through a repository per request; a missing row
// falls back to these defaults rather than failing.
type PlatformSettings struct {
	WhatsAppLink          string `json:"whatsappLink"`
	HistoryText           string `json:"historyText"`
	DepositInstruction    string `json:"depositInstruction"`
	WithdrawalInstruction string `json:"withdrawalInstruction"`
}

// DefaultPlatformSettings is returned when no settings row exists.
func DefaultPlatformSettings() *PlatformSettings {
	return &PlatformSettings{
		WhatsAppLink:          "#",
		HistoryText:           "Histórico da plataforma não disponível.",
		DepositInstruction:    "Instruções de depósito não disponíveis.",
		WithdrawalInstruction: "Instruções de saque não disponíveis.",
	}
}

// RouletteSettings holds the admin-configured prize list as a
// comma-separated string, e.g. "100,200,500,1000".
type RouletteSettings struct {
	Prizes string `json:"prizes"`
}

// UpdatePlatformSettingsInput represents staff input for platform settings.
type UpdatePlatformSettingsInput struct {
	WhatsAppLink          string `json:"whatsappLink" binding:"required,url"`
	HistoryText           string `json:"historyText" binding:"required"`
	DepositInstruction    string `json:"depositInstruction" binding:"required"`
	WithdrawalInstruction string `json:"withdrawalInstruction" binding:"required"`
}

// UpdateRouletteSettingsInput represents staff input for the prize list.
type UpdateRouletteSettingsInput struct {
	Prizes string `json:"prizes" binding:"required"`
}
