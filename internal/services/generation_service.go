package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"wingman/internal/models/request_models"
	"wingman/internal/models/response_models"
	"wingman/pkg/memcache"
	"wingman/pkg/utils"
)

// GenerationServiceInterface fronts the generative-language provider. Every
// operation is a single upstream call that degrades to a deterministic local
// fallback on any failure; callers never see an error.
type GenerationServiceInterface interface {
	GenerateOpeningLine(ctx context.Context, scn request_models.ScenarioContext) string
	GenerateReply(ctx context.Context, prompt string, scn request_models.ScenarioContext, history []request_models.HistoryTurn) string
	GenerateFeedback(ctx context.Context, userMessage, aiResponse string, scn request_models.ScenarioContext, recent []request_models.HistoryTurn) response_models.Feedback
	GenerateSceneDescription(ctx context.Context, scn request_models.ScenarioContext) string
	GenerateCoachingTips(ctx context.Context, scn request_models.ScenarioContext) response_models.CoachingTips
}

type GenerationService struct {
	client utils.GenerationClientInterface
	cache  memcache.GenerationCache
}

const generationCacheTTL = time.Hour

// NewGenerationService accepts a nil client; every operation then resolves
// straight to its fallback, which is the documented behavior when no API key
// is configured.
func NewGenerationService(client utils.GenerationClientInterface, cache memcache.GenerationCache) GenerationServiceInterface {
	return &GenerationService{client: client, cache: cache}
}

func (g *GenerationService) GenerateOpeningLine(ctx context.Context, scn request_models.ScenarioContext) string {
	fallback := fmt.Sprintf("Oh, hi! I don't think we've met before — I'm %s.", scn.Personality.Name)
	if g.client == nil {
		return fallback
	}

	prompt := fmt.Sprintf(`You are roleplaying as %s, %s.
Personality: %s
Tone: %s
Setting: %s
Scenario: %s

Write the very first thing %s says when a stranger approaches in this setting.
It must sound natural, be in character, and be a single short line (one or two
sentences). Return only the line itself, no quotes, nothing else.`,
		scn.Personality.Name, scn.Personality.Occupation,
		scn.Personality.Traits, scn.Personality.Tone,
		scn.Setting, scn.Scenario, scn.Personality.Name)

	line, err := g.client.GenerateText(ctx, prompt)
	if err != nil || line == "" {
		log.Printf("Opening line generation failed: %v", err)
		return fallback
	}
	return strings.Trim(line, `"`)
}

func (g *GenerationService) GenerateReply(ctx context.Context, prompt string, scn request_models.ScenarioContext, history []request_models.HistoryTurn) string {
	const fallback = "I'm having trouble responding right now. Could you try again?"
	if g.client == nil {
		return fallback
	}

	fullPrompt := fmt.Sprintf(`You are roleplaying as %s.
Personality: %s
Tone: %s
Setting: %s

You are having a conversation with someone in this setting. This is an ongoing
conversation. Respond naturally to their latest message. Keep it conversational
and realistic. Maximum 2-3 sentences per response.

User says: "%s"`,
		scn.Personality.Name, scn.Personality.Traits,
		scn.Personality.Tone, scn.Setting, prompt)

	reply, err := g.client.GenerateChat(ctx, normalizeHistory(history), fullPrompt)
	if err != nil || reply == "" {
		log.Printf("Reply generation failed: %v", err)
		return fallback
	}
	return reply
}

// normalizeHistory maps prior turns into the chat protocol's user/model
// roles. The protocol requires strict alternation starting with a user turn:
// a leading model turn (the seeded opening line) is dropped, and if the
// history still does not start with a user turn it is discarded entirely.
func normalizeHistory(history []request_models.HistoryTurn) []utils.ChatTurn {
	turns := make([]utils.ChatTurn, 0, len(history))
	for _, h := range history {
		role := utils.ChatRoleModel
		if h.Role == "user" {
			role = utils.ChatRoleUser
		}
		turns = append(turns, utils.ChatTurn{Role: role, Content: h.Content})
	}

	if len(turns) > 0 && turns[0].Role == utils.ChatRoleModel {
		turns = turns[1:]
	}
	if len(turns) == 0 || turns[0].Role != utils.ChatRoleUser {
		return nil
	}
	return turns
}

func fallbackFeedback() response_models.Feedback {
	return response_models.Feedback{
		Rating:      "neutral",
		Message:     "Thanks for practicing!",
		Suggestions: []string{"Great effort!", "Keep it up!"},
	}
}

func (g *GenerationService) GenerateFeedback(ctx context.Context, userMessage, aiResponse string, scn request_models.ScenarioContext, recent []request_models.HistoryTurn) response_models.Feedback {
	if g.client == nil {
		return fallbackFeedback()
	}

	if len(recent) > 6 {
		recent = recent[len(recent)-6:]
	}
	recentJSON, _ := json.Marshal(recent)

	prompt := fmt.Sprintf(`You are a concise, encouraging social-skills coach.
Analyze this exchange and return STRICT JSON only (no markdown fences):

Schema:
{
  "rating": "good"|"neutral"|"improve",
  "message": string,
  "suggestions": string[]
}

Inputs:
Scenario: %s
Persona: %s
User: "%s"
Persona reply: "%s"
Recent conversation (JSON): %s

Make suggestions that are specific to the user's latest message and this
recent context. Return only the JSON.`,
		scn.Scenario, scn.Personality.Name, userMessage, aiResponse, recentJSON)

	text, err := g.client.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("Feedback generation failed: %v", err)
		return fallbackFeedback()
	}

	var feedback response_models.Feedback
	extracted := utils.ExtractJSONObject(text)
	if extracted == "" || json.Unmarshal([]byte(extracted), &feedback) != nil ||
		feedback.Rating == "" || feedback.Message == "" || len(feedback.Suggestions) == 0 {
		log.Printf("Feedback response unparseable, using fallback")
		return fallbackFeedback()
	}
	return feedback
}

func (g *GenerationService) GenerateSceneDescription(ctx context.Context, scn request_models.ScenarioContext) string {
	cacheKey := "scene:" + scn.Scenario + ":" + scn.Personality.ID
	if g.cache != nil {
		if cached, ok := g.cache.Get(cacheKey); ok {
			if scene, ok := cached.(string); ok {
				return scene
			}
		}
	}

	fallback := fallbackScene(scn)
	if g.client == nil {
		return fallback
	}

	prompt := fmt.Sprintf(`Create a vivid scene description for this roleplay scenario:

Setting: %s
Scenario: %s
Character: %s - %s
Character traits: %s
Character interests: %s
Character backstory: %s

Write a scene description that:
1. Sets the environment and mood
2. Describes where %s is and what they're doing
3. Creates an opportunity for natural conversation
4. Uses vivid but concise language (2-3 sentences max)

Just return the scene description, nothing else.`,
		scn.Setting, scn.Scenario,
		scn.Personality.Name, scn.Personality.Occupation,
		scn.Personality.Traits, strings.Join(scn.Personality.Interests, ", "),
		scn.Personality.Backstory, scn.Personality.Name)

	scene, err := g.client.GenerateText(ctx, prompt)
	if err != nil || scene == "" {
		log.Printf("Scene generation failed: %v", err)
		return fallback
	}

	if g.cache != nil {
		g.cache.Set(cacheKey, scene, generationCacheTTL)
	}
	return scene
}

var fallbackScenes = map[string]string{
	"emma-bookworm": "You walk into the cozy coffee shop, the aroma of fresh brew filling the air. In a corner by the window, you spot Emma, completely absorbed in a thick novel while sipping her latte. There's an empty chair at the nearby table.",
	"alex-fitness":  "You're walking through the park on this beautiful morning when you notice Alex stretching by the jogging path, wearing athletic gear and preparing for a run. The park is peaceful, with just a few other early risers.",
	"jordan-social": "You step into the bar as the music picks up and spot Jordan near the dance floor, chatting easily with the bartender and clearly at home in the crowd. There's an open spot at the bar beside them.",
}

func fallbackScene(scn request_models.ScenarioContext) string {
	if scene, ok := fallbackScenes[scn.Personality.ID]; ok {
		return scene
	}
	firstTrait := scn.Personality.Traits
	if i := strings.Index(firstTrait, ","); i >= 0 {
		firstTrait = firstTrait[:i]
	}
	return fmt.Sprintf("You find yourself in %s where you notice %s, who appears to be %s. The environment feels welcoming and perfect for starting a conversation.",
		scn.Setting, scn.Personality.Name, strings.ToLower(strings.TrimSpace(firstTrait)))
}

func fallbackCoachingTips(scn request_models.ScenarioContext) response_models.CoachingTips {
	return response_models.CoachingTips{
		Tone: "warm and curious",
		Principles: []string{
			"Approach gently and be mindful of the environment",
			"Show curiosity about what they're doing",
			"Keep it brief and natural at first",
		},
		SuggestedOpeners: []string{
			fmt.Sprintf("Hi %s — this might be random, but what you're doing looks interesting.", scn.Personality.Name),
			"This place has a great vibe today, right?",
			"Mind if I ask what brought you here?",
		},
		PitfallsToAvoid: []string{
			"Interrupting abruptly",
			"Standing too close without invitation",
			"Overly personal questions right away",
		},
	}
}

func (g *GenerationService) GenerateCoachingTips(ctx context.Context, scn request_models.ScenarioContext) response_models.CoachingTips {
	cacheKey := "tips:" + scn.Scenario + ":" + scn.Personality.ID
	if g.cache != nil {
		if cached, ok := g.cache.Get(cacheKey); ok {
			if tips, ok := cached.(response_models.CoachingTips); ok {
				return tips
			}
		}
	}

	if g.client == nil {
		return fallbackCoachingTips(scn)
	}

	prompt := fmt.Sprintf(`You are a social-skills coach. Generate coaching guidance as STRICT JSON only.
DO NOT include markdown fences or any extra text.

Schema:
{
  "tone": string,
  "principles": string[],
  "suggestedOpeners": string[],
  "pitfallsToAvoid": string[]
}

Inputs:
Character: %s - %s
Traits: %s
Interests: %s
Setting: %s
Scenario: %s

Return strictly a single JSON object following the schema.`,
		scn.Personality.Name, scn.Personality.Occupation,
		scn.Personality.Traits, strings.Join(scn.Personality.Interests, ", "),
		scn.Setting, scn.Scenario)

	text, err := g.client.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("Coaching tips generation failed: %v", err)
		return fallbackCoachingTips(scn)
	}

	var tips response_models.CoachingTips
	extracted := utils.ExtractJSONObject(text)
	if extracted == "" || json.Unmarshal([]byte(extracted), &tips) != nil ||
		len(tips.Principles) == 0 || len(tips.SuggestedOpeners) == 0 || len(tips.PitfallsToAvoid) == 0 {
		log.Printf("Coaching tips response unparseable, using fallback")
		return fallbackCoachingTips(scn)
	}

	if g.cache != nil {
		g.cache.Set(cacheKey, tips, generationCacheTTL)
	}
	return tips
}
