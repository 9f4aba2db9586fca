package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ContentPack is seed lesson content loaded from YAML at startup.
type ContentPack struct {
	Listenings    []ListeningSeed    `yaml:"listenings"`
	Readings      []ReadingSeed      `yaml:"readings"`
	SpeakingSets  []SpeakingSetSeed  `yaml:"speaking_sets"`
	WritingTopics []WritingTopicSeed `yaml:"writing_topics"`
}

type ListeningSeed struct {
	Code       string    `yaml:"code"`
	Title      string    `yaml:"title"`
	Difficulty string    `yaml:"difficulty"`
	AudioURL   string    `yaml:"audio_url"`
	Cues       []CueSeed `yaml:"cues"`
}

type CueSeed struct {
	StartMs int    `yaml:"start_ms"`
	EndMs   int    `yaml:"end_ms"`
	Text    string `yaml:"text"`
}

type ReadingSeed struct {
	Code      string         `yaml:"code"`
	Title     string         `yaml:"title"`
	Level     string         `yaml:"level"`
	Content   string         `yaml:"content"`
	Questions []QuestionSeed `yaml:"questions"`
}

type QuestionSeed struct {
	Prompt  string `yaml:"prompt"`
	Options string `yaml:"options"`
	Answer  string `yaml:"answer"`
}

type SpeakingSetSeed struct {
	Code      string   `yaml:"code"`
	Title     string   `yaml:"title"`
	Level     string   `yaml:"level"`
	Sentences []string `yaml:"sentences"`
}

type WritingTopicSeed struct {
	Code     string `yaml:"code"`
	Title    string `yaml:"title"`
	Prompt   string `yaml:"prompt"`
	Level    string `yaml:"level"`
	MinWords int    `yaml:"min_words"`
}

// LoadContentPack reads and parses a content YAML file.
func LoadContentPack(path string) (*ContentPack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read content file: %w", err)
	}

	var pack ContentPack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to unmarshal content YAML: %w", err)
	}
	return &pack, nil
}
