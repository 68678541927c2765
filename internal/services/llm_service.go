package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/theinterviewer/backend/internal/common"
	"github.com/theinterviewer/backend/internal/models"
)

// LLMService generates suggested interview questions for a job posting.
// It is optional: when no API key is configured the service stays nil and
// the questions endpoint reports unavailable.
type LLMService struct {
	// Hold the client so it is not recreated on every request.
	Client llms.Model
}

func NewLLMService(ctx context.Context, apiKey string) (*LLMService, error) {
	llm, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel("gemini-2.5-flash"),
	)
	if err != nil {
		return nil, err
	}
	return &LLMService{Client: llm}, nil
}

const questionPrompt = `You are helping an HR team prepare interviews.
Given the job posting below, write exactly 5 interview questions that probe
the required skills and the stated experience level. Output one question per
line with no numbering, no markdown, and nothing else.

Title: %s
Required experience (years): %d
Required skills: %s
Description:
%s`

// SuggestInterviewQuestions asks the model for questions tailored to the
// posting and returns one question per non-empty line of the response.
func (s *LLMService) SuggestInterviewQuestions(ctx context.Context, job *models.JobPosting) ([]string, error) {
	description := job.Description
	if len(description) > 8000 {
		description = description[:8000]
	}
	prompt := fmt.Sprintf(questionPrompt, job.Title, job.ExperienceRequired, job.SkillsRequired, description)
	resp, err := llms.GenerateFromSinglePrompt(ctx, s.Client, prompt)
	if err != nil {
		return nil, common.NewError(common.CodeInternal, "question generation failed", err)
	}

	var questions []string
	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		questions = append(questions, line)
	}
	if len(questions) == 0 {
		return nil, common.NewError(common.CodeInternal, "model returned no questions", nil)
	}
	return questions, nil
}
