// Package seed populates a fresh store with the sample content the site
// ships with: six curated resources, two published stories, and the
// moderator account.
//
// The memory backend starts empty on every boot, so this runs at startup.
// For a file-backed SQLite store the data would otherwise duplicate on
// every restart — Run is a no-op whenever any resources already exist.
package seed

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/athletemind/backend/internal/apperror"
	"github.com/athletemind/backend/internal/model"
	"github.com/athletemind/backend/internal/repository"
	"github.com/athletemind/backend/internal/service"
)

// Run loads the sample data. Stories go through the repository rather
// than the service because the samples are pre-approved with backdated
// submission times — exactly what the public submission path forbids.
func Run(
	ctx context.Context,
	resources *service.ResourceService,
	stories repository.StoryRepository,
	users *service.UserService,
	adminUsername, adminPassword string,
	logger *slog.Logger,
) error {
	existing, err := resources.List(ctx, "")
	if err != nil {
		return fmt.Errorf("seed: checking existing resources: %w", err)
	}
	if len(existing) > 0 {
		logger.Info("seed skipped, store already populated",
			slog.Int("resources", len(existing)))
		return nil
	}

	for _, in := range sampleResources() {
		if _, err := resources.Create(ctx, in); err != nil {
			return fmt.Errorf("seed: creating resource %q: %w", in.Title, err)
		}
	}

	for _, story := range sampleStories() {
		s := story
		if err := stories.CreateStory(ctx, &s); err != nil {
			return fmt.Errorf("seed: creating story %q: %w", s.Title, err)
		}
	}

	if _, err := users.Register(ctx, service.UserInput{
		Username: adminUsername,
		Password: adminPassword,
	}); err != nil && !errors.Is(err, apperror.ErrConflict) {
		return fmt.Errorf("seed: creating admin user: %w", err)
	}

	logger.Info("seed completed",
		slog.Int("resources", len(sampleResources())),
		slog.Int("stories", len(sampleStories())),
	)
	return nil
}

func strPtr(s string) *string { return &s }

func sampleResources() []service.ResourceInput {
	return []service.ResourceInput{
		{
			Title:       "Mindfulness Techniques",
			Description: "Guided breathing exercises, meditation practices, and visualization techniques to help manage anxiety and stress during recovery.",
			Category:    "mindfulness",
			Icon:        "brain",
			URL:         strPtr("https://www.headspace.com/meditation/sport"),
			Rating:      4,
			Likes:       24,
		},
		{
			Title:       "Crisis Helplines",
			Description: "24/7 support lines including NAMI (1-800-950-NAMI), Crisis Text Line (Text HOME to 741741), and National Suicide Prevention Lifeline.",
			Category:    "crisis",
			Icon:        "phone",
			URL:         strPtr("https://www.nami.org/help"),
			Rating:      5,
			Likes:       45,
		},
		{
			Title:       "Recommended Reading",
			Description: "\"The Champion's Comeback\" by Jim Afremow, \"Mind Gym\" by Gary Mack, and other books focused on sports psychology and mental resilience.",
			Category:    "education",
			Icon:        "book",
			URL:         strPtr("https://www.amazon.com/Champions-Comeback-Great-Athletes-Recover/dp/054423142X"),
			Rating:      4,
			Likes:       18,
		},
		{
			Title:       "Recovery Journals",
			Description: "Structured journaling templates and prompts designed specifically for athletes dealing with injury recovery and mental health challenges.",
			Category:    "tools",
			Icon:        "edit",
			URL:         strPtr("https://bulletjournal.com/pages/learn"),
			Rating:      4,
			Likes:       31,
		},
		{
			Title:       "Visualization Exercises",
			Description: "Mental training techniques to help athletes visualize successful recovery and return to sport performance.",
			Category:    "mindfulness",
			Icon:        "eye",
			URL:         strPtr("https://www.psychologytoday.com/us/blog/sport-psychology/201210/visualization-techniques-athletes"),
			Rating:      4,
			Likes:       22,
		},
		{
			Title:       "Support Groups",
			Description: "Information about local and online support groups for injured athletes, including peer mentorship programs.",
			Category:    "crisis",
			Icon:        "users",
			URL:         strPtr("https://www.mentalhealthamerica.net/finding-help"),
			Rating:      5,
			Likes:       38,
		},
	}
}

func sampleStories() []model.Story {
	now := time.Now().UTC()
	return []model.Story{
		{
			FirstName:   "Marcus",
			LastName:    "Rodriguez",
			Sport:       "Soccer",
			InjuryType:  "ACL Recovery",
			Email:       "marcus.r@example.com",
			Title:       "From Setback to Comeback: My ACL Journey",
			Content:     "The mental battle was harder than the physical rehab. Learning to trust my knee again took months, but the mindfulness techniques helped me stay positive and eventually return stronger than before. The journey taught me that recovery isn't just about the body - it's about rebuilding confidence and mental strength.",
			Approved:    true,
			SubmittedAt: now.AddDate(0, 0, -90),
		},
		{
			FirstName:   "Sarah",
			LastName:    "Chen",
			Sport:       "Basketball",
			InjuryType:  "Ankle Injury",
			Email:       "sarah.c@example.com",
			Title:       "Finding Hope After My Basketball Injury",
			Content:     "I thought my basketball career was over. The depression hit hard, but connecting with other athletes going through similar experiences made all the difference in my recovery journey. This platform helped me realize I wasn't alone and that comeback stories are possible.",
			Approved:    true,
			SubmittedAt: now.AddDate(0, 0, -30),
		},
	}
}
