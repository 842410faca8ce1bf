package llmprovider

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"fms-dashboard/config"
	"fms-dashboard/pkg/agentclient"
	"fms-dashboard/pkg/chatcompletion"
	"fms-dashboard/pkg/log"
)

// InitializeProviders creates Provider instances from config.AssistantConfig.
// The agent endpoint, when set, always goes first. Remaining providers are
// sorted by priority (ascending) with disabled ones filtered out. Providers
// that fail to initialize are skipped instead of failing the service.
func InitializeProviders(ctx context.Context, cfg *config.AssistantConfig, l log.Logger) ([]Provider, error) {
	if cfg == nil {
		return nil, fmt.Errorf("assistant config is nil")
	}

	var providers []Provider
	var initErrors []string

	if cfg.AgentURL != "" {
		client, err := agentclient.New(agentclient.Config{URL: cfg.AgentURL})
		if err != nil {
			initErrors = append(initErrors, fmt.Sprintf("agent: %v", err))
		} else {
			providers = append(providers, NewAgentAdapter(client))
		}
	}

	var enabledProviders []config.ProviderConfig
	for _, p := range cfg.Providers {
		if p.Enabled {
			enabledProviders = append(enabledProviders, p)
		}
	}

	sort.SliceStable(enabledProviders, func(i, j int) bool {
		return enabledProviders[i].Priority < enabledProviders[j].Priority
	})

	for _, p := range enabledProviders {
		provider, err := createProvider(p)
		if err != nil {
			errMsg := fmt.Sprintf("failed to initialize provider %s (priority %d): %v", p.Name, p.Priority, err)
			initErrors = append(initErrors, errMsg)
			l.Warnf(ctx, "llmprovider.InitializeProviders: %s", errMsg)
			continue
		}
		providers = append(providers, provider)
	}

	if len(providers) == 0 {
		if len(initErrors) == 0 {
			return nil, ErrNoProvidersConfigured
		}
		return nil, fmt.Errorf("%w: %s", ErrNoProvidersConfigured, strings.Join(initErrors, "; "))
	}

	if len(initErrors) > 0 {
		l.Warnf(ctx, "llmprovider.InitializeProviders: %d provider(s) failed to initialize, continuing with %d",
			len(initErrors), len(providers))
	}

	return providers, nil
}

// createProvider creates a concrete provider instance based on the provider config.
// Every non-agent provider speaks the OpenAI-compatible chat completions API.
func createProvider(cfg config.ProviderConfig) (Provider, error) {
	if cfg.Name == AgentName {
		client, err := agentclient.New(agentclient.Config{URL: cfg.BaseURL})
		if err != nil {
			return nil, fmt.Errorf("failed to create agent client: %w", err)
		}
		return NewAgentAdapter(client), nil
	}

	if cfg.APIKey == "" {
		return nil, fmt.Errorf("provider %s: API key is required", cfg.Name)
	}

	client, err := chatcompletion.New(chatcompletion.Config{
		APIKey:  cfg.APIKey,
		Model:   cfg.Model,
		BaseURL: cfg.BaseURL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Name, err)
	}
	return NewChatCompletionAdapter(cfg.Name, client), nil
}
