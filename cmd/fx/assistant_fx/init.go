package assistant_fx

import (
	"fmt"
	"log"
	"os"
	"strings"

	"go.uber.org/fx"
	"tripjournal/internal/api/controllers"
	"tripjournal/internal/services"
	"tripjournal/pkg/utils"
)

var Module = fx.Provide(
	ProvideChatClient,
	provideGeoClient,
	provideAssistantService,
	controllers.NewAssistantController)

// ChatConfig holds configuration for the conversational model client.
type ChatConfig struct {
	Provider string
	APIKey   string
	Model    string
}

// ProvideChatClient creates a chat client based on environment variables.
func ProvideChatClient() (utils.ChatClientInterface, error) {
	config := getChatConfig()

	log.Printf("Initializing %s chat client with model: %s", config.Provider, config.Model)

	client, err := utils.NewChatClient(config.Provider, config.APIKey, config.Model)
	if err != nil {
		return nil, fmt.Errorf("failed to create chat client: %w", err)
	}
	return client, nil
}

func provideGeoClient() *services.GoogleGeoClient {
	return services.NewGoogleGeoClient()
}

func provideAssistantService(chatClient utils.ChatClientInterface, geoClient *services.GoogleGeoClient) services.AssistantServiceInterface {
	return services.NewAssistantService(chatClient, geoClient, geoClient)
}

func getChatConfig() ChatConfig {
	provider := getEnvWithDefault("AI_PROVIDER", "gemini")

	var apiKey, model string
	switch strings.ToLower(provider) {
	case "openai":
		apiKey = os.Getenv("OPENAI_API_KEY")
		model = getEnvWithDefault("OPENAI_MODEL", "gpt-4o-mini")
		if apiKey == "" {
			log.Fatal("OPENAI_API_KEY is required when using OpenAI provider")
		}
	case "gemini":
		apiKey = os.Getenv("GEMINI_API_KEY")
		model = getEnvWithDefault("GEMINI_MODEL", "gemini-1.5-flash")
		if apiKey == "" {
			log.Fatal("GEMINI_API_KEY is required when using Gemini provider")
		}
	}

	return ChatConfig{
		Provider: provider,
		APIKey:   apiKey,
		Model:    model,
	}
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
