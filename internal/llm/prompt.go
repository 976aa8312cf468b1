package llm

import (
	"fmt"
	"regexp"
	"strings"
)

const captionSystemPrompt = "Generate a short, beautiful travel caption for the specified location."

var ordinalPrefix = regexp.MustCompile(`^\d+\.\s*`)

// LandmarkPrompt builds the user prompt asking for landmarks in a location
func LandmarkPrompt(location string) string {
	return fmt.Sprintf("List three famous landmarks in %s. Only return a simple list.", location)
}

// LandmarkRequest builds the completion request for a landmark lookup
func LandmarkRequest(location string, maxTokens int) CompletionRequest {
	return CompletionRequest{
		Messages:  []Message{{Role: RoleUser, Content: LandmarkPrompt(location)}},
		MaxTokens: maxTokens,
	}
}

// CaptionRequest builds the completion request for a travel caption
func CaptionRequest(location string, maxTokens int, temperature float64) CompletionRequest {
	return CompletionRequest{
		System: captionSystemPrompt,
		Messages: []Message{
			{Role: RoleUser, Content: fmt.Sprintf("Write a short travel caption about %s.", location)},
		},
		MaxTokens:   maxTokens,
		Temperature: Float(temperature),
	}
}

// ParseList turns a free-text model answer into list items.
// Lines are split on '\n', a leading "N." ordinal is dropped and blank lines are skipped.
func ParseList(content string) []string {
	items := []string{}
	for _, line := range strings.Split(content, "\n") {
		item := strings.TrimSpace(ordinalPrefix.ReplaceAllString(strings.TrimSpace(line), ""))
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}
