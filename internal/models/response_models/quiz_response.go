package response_models

type QuizResultResponse struct {
	Persona         string   `json:"persona"`
	Recommendations []string `json:"recommendations"`
}

// QuizOptionsResponse describes the accepted answer values so clients can build the form.
type QuizOptionsResponse struct {
	ComfortLevel        []string `json:"comfort_level"`
	SoloExperience      []string `json:"solo_experience"`
	NightTravel         []string `json:"night_travel"`
	TransportConfidence []string `json:"transport_confidence"`
	AnxietyTriggers     []string `json:"anxiety_triggers"`
	Personas            []string `json:"personas"`
}
