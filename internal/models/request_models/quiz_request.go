package request_models

// QuizRequest is the safety quiz as posted by the front-end. Enum values are
// validated by the persona engine, not by binding tags, so every bad value
// surfaces as the same invalid-input error.
type QuizRequest struct {
	ComfortLevel        string   `json:"comfort_level"`
	SoloExperience      string   `json:"solo_experience"`
	NightTravel         string   `json:"night_travel"`
	AnxietyTriggers     []string `json:"anxiety_triggers"`
	TransportConfidence string   `json:"transport_confidence"`
}
