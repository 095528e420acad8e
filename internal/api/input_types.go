package api

// Request bodies use pointer fields so partial updates can tell an absent
// key from an explicit null or zero value.

type registerBody struct {
	Name     *string `json:"nome"`
	Email    *string `json:"email"`
	Password *string `json:"senha"`
}

type loginBody struct {
	Email    *string `json:"email"`
	Password *string `json:"senha"`
}

type refreshBody struct {
	RefreshToken *string `json:"refresh_token"`
}

type profileBody struct {
	Name  *string `json:"nome"`
	Email *string `json:"email"`
}

type changePasswordBody struct {
	CurrentPassword *string `json:"senha_atual"`
	NewPassword     *string `json:"nova_senha"`
	ConfirmPassword *string `json:"nova_senha_confirmacao"`
}

type exerciseBody struct {
	Name        *string `json:"nome"`
	MuscleGroup *string `json:"grupo_muscular"`
	Equipment   *string `json:"equipamento"`
}

type sessionBody struct {
	Modality    *string `json:"modalidade"`
	StartedAt   *string `json:"inicio_em"`
	DurationSec *int    `json:"duracao_seg"`
	Calories    *int    `json:"calorias"`
	Notes       *string `json:"observacoes"`
}

type runningMetricsBody struct {
	SessionID       *uint    `json:"sessao"`
	DistanceKm      *float64 `json:"distancia_km"`
	AvgPaceSecPerKm *int     `json:"ritmo_medio_seg_km"`
	AvgHeartRate    *int     `json:"fc_media"`
}

type cyclingMetricsBody struct {
	SessionID    *uint    `json:"sessao"`
	DistanceKm   *float64 `json:"distancia_km"`
	AvgSpeedKmh  *float64 `json:"velocidade_media_kmh"`
	AvgHeartRate *int     `json:"fc_media"`
}

type strengthSetBody struct {
	SessionID  *uint    `json:"sessao"`
	ExerciseID *uint    `json:"exercicio"`
	Position   *int     `json:"ordem_serie"`
	Reps       *int     `json:"repeticoes"`
	LoadKg     *float64 `json:"carga_kg"`
}

type habitGoalBody struct {
	Title             *string  `json:"titulo"`
	Modality          *string  `json:"modalidade"`
	StartDate         *string  `json:"data_inicio"`
	EndDate           *string  `json:"data_fim"`
	WeeklyFrequency   *int     `json:"frequencia_semana"`
	DistanceTargetKm  *float64 `json:"distancia_meta_km"`
	DurationTargetMin *int     `json:"duracao_meta_min"`
	SessionTarget     *int     `json:"sessoes_meta"`
	Active            *bool    `json:"ativo"`
}

type habitCheckinBody struct {
	GoalID    *uint   `json:"meta"`
	Date      *string `json:"data"`
	SessionID *uint   `json:"sessao"`
	Completed *bool   `json:"concluido"`
}
