package models

import "encoding/json"

// DialogueScenario holds the high-level generation brief produced before any
// dialogue content exists.
type DialogueScenario struct {
	DialogueType       string `json:"dialogue_type" validate:"required" desc:"Type or purpose of the dialogue, such as 'interview', 'debate', 'negotiation', etc."`
	TemporalContext    string `json:"temporal_context" validate:"required" desc:"Temporal background, such as '21st century', 'modern day', 'information age', etc."`
	SpatialContext     string `json:"spatial_context" validate:"required" desc:"Spatial or geographical background, such as 'urban', 'corporate', 'academic', etc."`
	CulturalBackground string `json:"cultural_background" validate:"required" desc:"Cultural background, such as 'Western', 'Eastern', 'Global', etc."`
	DialogueLanguage   string `json:"dialogue_language" desc:"The language to be used in the dialogue, either 'English' or 'Chinese'"`
	CustomPrompt       string `json:"custom_prompt" desc:"User-defined prompt to provide additional guidance or constraints"`
}

// DefaultDialogueLanguage is applied when a scenario omits dialogue_language.
const DefaultDialogueLanguage = "English"

// ApplyDefaults fills optional scenario fields that were left empty.
func (s *DialogueScenario) ApplyDefaults() {
	if s.DialogueLanguage == "" {
		s.DialogueLanguage = DefaultDialogueLanguage
	}
}

// SchemaExclude lists scenario fields hidden from generated prompt-schema
// views. The language and custom prompt are injected into prompts separately,
// so the model is never asked to produce them.
func (DialogueScenario) SchemaExclude() []string {
	return []string{"dialogue_language", "custom_prompt"}
}

// Setting describes the scene a conversation takes place in.
type Setting struct {
	Location   string `json:"location" validate:"required" desc:"Physical location where the conversation takes place"`
	TimeOfDay  string `json:"time_of_day" validate:"required" desc:"Time of day when the conversation occurs"`
	Context    string `json:"context" validate:"required" desc:"Brief description of the situational context"`
	Atmosphere string `json:"atmosphere" validate:"required" desc:"Mood or feeling of the environment"`
}

// Role describes one of the two speakers in a dialogue.
type Role struct {
	Name                string   `json:"name" validate:"required" desc:"Full name of the speaker"`
	Gender              string   `json:"gender" validate:"required" desc:"Gender of the speaker"`
	Age                 int      `json:"age" validate:"required,gt=0" desc:"Age of the speaker"`
	Occupation          string   `json:"occupation" validate:"required" desc:"Current occupation or role"`
	Nationality         string   `json:"nationality" validate:"required" desc:"The nationality of the speaker"`
	PersonalityTraits   []string `json:"personality_traits" validate:"required" desc:"List of key personality traits that define the speaker"`
	RelationshipContext string   `json:"relationship_context" validate:"required" desc:"Speaker's relationship or role in the current context"`
	SelfIntroduction    string   `json:"self_introduction" validate:"required" desc:"Detailed description of the speaker's characteristics and background"`
}

// ConversationContext describes the intended shape of the conversation.
type ConversationContext struct {
	Type                string   `json:"type" validate:"required" desc:"Type or category of the conversation"`
	MainTopic           string   `json:"main_topic" validate:"required" desc:"Primary topic or purpose of the conversation"`
	RelationshipDynamic string   `json:"relationship_dynamic" validate:"required" desc:"Nature of relationship between the speakers"`
	EmotionalTone       string   `json:"emotional_tone" validate:"required" desc:"Overall emotional tone of the conversation"`
	ExpectedDuration    string   `json:"expected_duration" validate:"required" desc:"Expected length of the conversation"`
	ExpectedTurns       int      `json:"expected_turns" validate:"required,gt=0" desc:"Expected number of conversation turns"`
	KeyPoints           []string `json:"key_points" validate:"required" desc:"List of key points or events expected in the conversation"`
}

// Metadata is the fixed scene/role/context description shared by all turns in
// a dialogue. It is owned exclusively by its Dialogue.
type Metadata struct {
	Setting             Setting             `json:"setting" desc:"Details about the conversation setting"`
	Role1               Role                `json:"role_1" desc:"Details about the first speaker"`
	Role2               Role                `json:"role_2" desc:"Details about the second speaker"`
	ConversationContext ConversationContext `json:"conversation_context" desc:"Details about the conversation context and structure"`
}

// Speaker identifiers used in ConversationTurn.SpeakerID. Correspondence with
// Metadata.Role1/Role2 is expected but intentionally not enforced.
const (
	SpeakerRole1 = "role_1"
	SpeakerRole2 = "role_2"
)

// ConversationTurn is one utterance by one speaker.
type ConversationTurn struct {
	SpeakerID   string `json:"speaker_id" validate:"required" desc:"Identifier for the speaker (role_1 or role_2)"`
	SpeakerName string `json:"speaker_name" validate:"required" desc:"Name of the speaker"`
	Text        string `json:"text" validate:"required" desc:"The actual dialogue text"`
	Emotion     string `json:"emotion" validate:"required" desc:"Emotional state of the speaker during this turn"`
	SpeechRate  string `json:"speech_rate" validate:"required" desc:"Rate of speech for this turn"`
	PauseAfter  string `json:"pause_after" validate:"required" desc:"Length of pause after this turn"`
	TTSPrompt   string `json:"tts_prompt" validate:"required" desc:"Concise natural language prompt describing how the text should be spoken by a TTS model"`
}

// Conversation wraps an ordered list of turns.
type Conversation struct {
	Utterances []ConversationTurn `json:"utterances" validate:"required,dive" desc:"List of conversation utterances (turns)"`
}

// ConsistencyEvaluation is produced by the external evaluation component. Its
// shape is owned there; this module carries and persists it verbatim.
type ConsistencyEvaluation = json.RawMessage

// Dialogue is the aggregate root of the generation pipeline. Producers fill
// its fields incrementally (scenario, then metadata, script, conversation,
// evaluation); every field is therefore optional and serializes as an
// explicit null while absent. The record itself imposes no stage ordering.
type Dialogue struct {
	Scenario              *DialogueScenario     `json:"scenario" validate:"omitempty"`
	Metadata              *Metadata             `json:"metadata" validate:"omitempty"`
	Script                *string               `json:"script"`
	Conversation          []ConversationTurn    `json:"conversation" validate:"omitempty,dive"`
	ConsistencyEvaluation ConsistencyEvaluation `json:"consistency_evaluation"`
}

// Turns returns the conversation as a Conversation value. The slice is shared
// with the dialogue, not copied.
func (d *Dialogue) Turns() Conversation {
	return Conversation{Utterances: d.Conversation}
}

// StringPtr returns a pointer to s, for filling optional fields such as
// Dialogue.Script.
func StringPtr(s string) *string {
	return &s
}
