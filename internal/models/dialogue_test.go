package models_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yuriak/SpeechDialogueFactory/internal/models"
)

// Fixtures shared across the package tests.

func testRoleAna() models.Role {
	return models.Role{
		Name:                "Ana",
		Gender:              "F",
		Age:                 34,
		Occupation:          "Doctor",
		Nationality:         "Spanish",
		PersonalityTraits:   []string{"calm", "direct"},
		RelationshipContext: "colleague",
		SelfIntroduction:    "A calm and direct doctor from Madrid.",
	}
}

func testRoleMarco() models.Role {
	return models.Role{
		Name:                "Marco",
		Gender:              "M",
		Age:                 41,
		Occupation:          "Nurse",
		Nationality:         "Italian",
		PersonalityTraits:   []string{"warm", "talkative"},
		RelationshipContext: "colleague",
		SelfIntroduction:    "A warm, talkative nurse who has worked here for years.",
	}
}

func testScenario() models.DialogueScenario {
	return models.DialogueScenario{
		DialogueType:       "workplace discussion",
		TemporalContext:    "modern day",
		SpatialContext:     "hospital",
		CulturalBackground: "Western",
		DialogueLanguage:   "English",
	}
}

func testDialogue() *models.Dialogue {
	scenario := testScenario()
	metadata := models.Metadata{
		Setting: models.Setting{
			Location:   "hospital break room",
			TimeOfDay:  "late evening",
			Context:    "end of a long shift",
			Atmosphere: "tired but relaxed",
		},
		Role1: testRoleAna(),
		Role2: testRoleMarco(),
		ConversationContext: models.ConversationContext{
			Type:                "casual conversation",
			MainTopic:           "a difficult patient case",
			RelationshipDynamic: "trusted colleagues",
			EmotionalTone:       "reflective",
			ExpectedDuration:    "5 minutes",
			ExpectedTurns:       4,
			KeyPoints:           []string{"recap the case", "agree on next steps"},
		},
	}
	return &models.Dialogue{
		Scenario: &scenario,
		Metadata: &metadata,
		Script:   models.StringPtr("Ana and Marco unwind after a long shift and talk through a case."),
		Conversation: []models.ConversationTurn{
			{
				SpeakerID:   models.SpeakerRole1,
				SpeakerName: "Ana",
				Text:        "That was a rough one today.",
				Emotion:     "tired",
				SpeechRate:  "slow",
				PauseAfter:  "medium",
				TTSPrompt:   "Speak slowly, with a tired exhale.",
			},
			{
				SpeakerID:   models.SpeakerRole2,
				SpeakerName: "Marco",
				Text:        "You handled it well. The family was grateful.",
				Emotion:     "warm",
				SpeechRate:  "medium",
				PauseAfter:  "short",
				TTSPrompt:   "Warm and reassuring tone.",
			},
		},
		ConsistencyEvaluation: json.RawMessage(`{"overall_score":4.5,"notes":["tone consistent"]}`),
	}
}

// assertDialogueEqual compares dialogues structurally. The opaque evaluation
// blob is compared as JSON because pretty serialization re-indents it.
func assertDialogueEqual(t *testing.T, want, got *models.Dialogue) {
	t.Helper()
	if want.ConsistencyEvaluation == nil {
		assert.Nil(t, got.ConsistencyEvaluation)
	} else {
		assert.JSONEq(t, string(want.ConsistencyEvaluation), string(got.ConsistencyEvaluation))
	}
	wantRest, gotRest := *want, *got
	wantRest.ConsistencyEvaluation, gotRest.ConsistencyEvaluation = nil, nil
	assert.Equal(t, wantRest, gotRest)
}

func TestRoleValidation(t *testing.T) {
	t.Run("valid role passes", func(t *testing.T) {
		role := testRoleAna()
		assert.NoError(t, role.Validate())
	})

	t.Run("missing age fails", func(t *testing.T) {
		role := testRoleAna()
		role.Age = 0
		err := role.Validate()
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("missing name fails", func(t *testing.T) {
		role := testRoleAna()
		role.Name = ""
		assert.ErrorIs(t, role.Validate(), models.ErrValidation)
	})

	t.Run("non-integer age fails at decode", func(t *testing.T) {
		_, err := models.FromJSON[models.Role]([]byte(`{
			"name": "Ana", "gender": "F", "age": "thirty",
			"occupation": "Doctor", "nationality": "Spanish",
			"personality_traits": ["calm"], "relationship_context": "colleague",
			"self_introduction": "..."
		}`))
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestScenarioDefaults(t *testing.T) {
	t.Run("dialogue_language defaults to English", func(t *testing.T) {
		scenario, err := models.FromMap[models.DialogueScenario](map[string]any{
			"dialogue_type":       "interview",
			"temporal_context":    "21st century",
			"spatial_context":     "corporate",
			"cultural_background": "Global",
		})
		require.NoError(t, err)
		assert.Equal(t, "English", scenario.DialogueLanguage)
		assert.Equal(t, "", scenario.CustomPrompt)
	})

	t.Run("explicit language kept", func(t *testing.T) {
		scenario := testScenario()
		scenario.DialogueLanguage = "Chinese"
		scenario.ApplyDefaults()
		assert.Equal(t, "Chinese", scenario.DialogueLanguage)
	})

	t.Run("missing required field fails", func(t *testing.T) {
		_, err := models.FromMap[models.DialogueScenario](map[string]any{
			"dialogue_type": "interview",
		})
		assert.ErrorIs(t, err, models.ErrValidation)
	})
}

func TestMapConversion(t *testing.T) {
	t.Run("role round-trips through a map", func(t *testing.T) {
		role := testRoleAna()
		m, err := models.ToMap(&role)
		require.NoError(t, err)
		assert.Equal(t, "Ana", m["name"])

		back, err := models.FromMap[models.Role](m)
		require.NoError(t, err)
		assert.Equal(t, &role, back)
	})

	t.Run("wrong primitive shape fails", func(t *testing.T) {
		role := testRoleAna()
		m, err := models.ToMap(&role)
		require.NoError(t, err)
		m["age"] = "thirty"

		_, err = models.FromMap[models.Role](m)
		assert.ErrorIs(t, err, models.ErrValidation)
	})

	t.Run("nested metadata converts recursively", func(t *testing.T) {
		d := testDialogue()
		m, err := models.ToMap(d.Metadata)
		require.NoError(t, err)
		require.Contains(t, m, "role_1")

		back, err := models.FromMap[models.Metadata](m)
		require.NoError(t, err)
		assert.Equal(t, d.Metadata, back)
	})
}

func TestConversationContextValidation(t *testing.T) {
	ctx := models.ConversationContext{
		Type:                "debate",
		MainTopic:           "city planning",
		RelationshipDynamic: "opponents",
		EmotionalTone:       "heated",
		ExpectedDuration:    "10 minutes",
		ExpectedTurns:       8,
		KeyPoints:           []string{"opening statements", "rebuttals"},
	}
	assert.NoError(t, ctx.Validate())

	ctx.ExpectedTurns = 0
	assert.ErrorIs(t, ctx.Validate(), models.ErrValidation)
}

func TestPersonalityTraitsOrder(t *testing.T) {
	role := testRoleAna()
	data, err := models.ToJSON(&role, false)
	require.NoError(t, err)

	back, err := models.FromJSON[models.Role](data)
	require.NoError(t, err)
	assert.Equal(t, []string{"calm", "direct"}, back.PersonalityTraits)
}

func TestDialogueIncrementalConstruction(t *testing.T) {
	// Fields may be populated in any subset; the record imposes no ordering.
	scenario := testScenario()
	d := &models.Dialogue{Scenario: &scenario}
	assert.NoError(t, d.Validate())
	assert.Nil(t, d.Metadata)
	assert.Nil(t, d.Script)
	assert.Nil(t, d.Conversation)
	assert.Nil(t, d.ConsistencyEvaluation)

	// A populated sub-record is still validated.
	bad := testDialogue()
	bad.Metadata.Role1.Name = ""
	assert.ErrorIs(t, bad.Validate(), models.ErrValidation)
}
