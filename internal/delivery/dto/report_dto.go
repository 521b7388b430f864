package dto

type RankedPersonResponse struct {
	ID       string `json:"id"`
	FullName string `json:"nombre_completo"`
	Count    int    `json:"citas"`
}

// ReportResponse is the statistics summary
type ReportResponse struct {
	BySpecialty         map[string]int        `json:"consultas_por_especialidad"`
	MostRequestedDoctor *RankedPersonResponse `json:"medico_mas_solicitado,omitempty"`
	MostFrequentPatient *RankedPersonResponse `json:"paciente_mas_frecuente,omitempty"`
	MonthlyAverage      string                `json:"promedio_mensual"`
}
