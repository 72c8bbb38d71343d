package config

import (
	"testing"
)

func TestApplyDefaults(t *testing.T) {
	cfg := ExampleConfig{
		Name:     "demo-app",
		Category: "basic",
	}
	cfg.ApplyDefaults()

	if cfg.Title != "Demo App" {
		t.Errorf("Expected title 'Demo App', got %q", cfg.Title)
	}
	if cfg.Description != DefaultDescription {
		t.Errorf("Expected default description %q, got %q", DefaultDescription, cfg.Description)
	}
	if cfg.Author != DefaultAuthor {
		t.Errorf("Expected default author %q, got %q", DefaultAuthor, cfg.Author)
	}
	if cfg.CreatedAt.IsZero() {
		t.Error("Expected CreatedAt to be set")
	}
}

func TestApplyDefaultsKeepsProvidedValues(t *testing.T) {
	cfg := ExampleConfig{
		Name:        "demo-app",
		Title:       "My Title",
		Description: "My description",
		Author:      "someone",
		Category:    "basic",
	}
	cfg.ApplyDefaults()

	if cfg.Title != "My Title" || cfg.Description != "My description" || cfg.Author != "someone" {
		t.Errorf("ApplyDefaults overwrote provided values: %+v", cfg)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		cfg         ExampleConfig
		expectError bool
	}{
		{
			name: "valid",
			cfg:  ExampleConfig{Name: "fhe-counter", Category: "basic"},
		},
		{
			name:        "empty name",
			cfg:         ExampleConfig{Category: "basic"},
			expectError: true,
		},
		{
			name:        "uppercase name",
			cfg:         ExampleConfig{Name: "FheCounter", Category: "basic"},
			expectError: true,
		},
		{
			name:        "trailing hyphen",
			cfg:         ExampleConfig{Name: "demo-", Category: "basic"},
			expectError: true,
		},
		{
			name:        "missing category",
			cfg:         ExampleConfig{Name: "demo-app"},
			expectError: true,
		},
		{
			name: "digits allowed",
			cfg:  ExampleConfig{Name: "erc20-demo", Category: "advanced"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.expectError && err == nil {
				t.Error("Expected error but got none")
			}
			if !tt.expectError && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestPascalCase(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "fhe-counter", want: "FheCounter"},
		{input: "demo", want: "Demo"},
		{input: "confidential-erc20", want: "ConfidentialErc20"},
	}

	for _, tt := range tests {
		if got := PascalCase(tt.input); got != tt.want {
			t.Errorf("PascalCase(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestTitleCase(t *testing.T) {
	if got := TitleCase("blind-auction"); got != "Blind Auction" {
		t.Errorf("TitleCase = %q, want 'Blind Auction'", got)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	s, err := Load()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	if s.Author != DefaultAuthor {
		t.Errorf("Expected default author %q, got %q", DefaultAuthor, s.Author)
	}
	if s.ExamplesRoot != "examples" {
		t.Errorf("Expected examples root 'examples', got %q", s.ExamplesRoot)
	}
	if s.SolidityVersion == "" {
		t.Error("Expected a default solidity version")
	}
	if _, ok := s.Dependencies["@fhevm/solidity"]; !ok {
		t.Error("Expected @fhevm/solidity in managed dependencies")
	}
}
