package store

import (
	"context"
	"time"

	"github.com/visualgenius/server/internal/domain"
)

// DemoOwnerUserID owns the seeded demo collections. Listing for any other
// owner never returns them; deletion is refused by policy.
const DemoOwnerUserID = "00000000-0000-0000-0000-000000000001"

// seedDemoCollections inserts the built-in example collections if they are
// not already present.
func (s *SQLiteStore) seedDemoCollections() error {
	ctx := context.Background()
	for _, c := range demoCollections() {
		existing, err := s.GetCollection(ctx, c.ID)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}
		if err := s.CreateCollection(ctx, &c); err != nil {
			return err
		}
	}
	return nil
}

func demoCollections() []domain.CardCollection {
	now := time.Now()

	card := func(id, title, description string) domain.VisualCard {
		return domain.VisualCard{
			ID:          id,
			Title:       title,
			Description: description,
			Category:    domain.CardCategoryAction,
			CreatedAt:   now,
		}
	}

	return []domain.CardCollection{
		{
			ID:          "demo-collection-1",
			Name:        "Morning Routine",
			OwnerUserID: DemoOwnerUserID,
			Demo:        true,
			CreatedAt:   now,
			UpdatedAt:   now,
			Cards: []domain.VisualCard{
				card("morning-1", "Wake Up", "Time to wake up and start the day"),
				card("morning-2", "Brush Teeth", "Brush your teeth for 2 minutes"),
				card("morning-3", "Get Dressed", "Put on clean clothes for the day"),
				card("morning-4", "Eat Breakfast", "Have a healthy breakfast"),
				card("morning-5", "Pack Backpack", "Get your school bag ready"),
			},
		},
		{
			ID:          "demo-collection-2",
			Name:        "Washing Hands",
			OwnerUserID: DemoOwnerUserID,
			Demo:        true,
			CreatedAt:   now,
			UpdatedAt:   now,
			Cards: []domain.VisualCard{
				card("wash-1", "Turn on Water", "Turn on the faucet with warm water"),
				card("wash-2", "Wet Hands", "Put your hands under the water"),
				card("wash-3", "Apply Soap", "Put soap on your hands"),
				card("wash-4", "Scrub Hands", "Rub your hands together for 20 seconds"),
				card("wash-5", "Rinse Hands", "Rinse all the soap off"),
				card("wash-6", "Dry Hands", "Dry your hands with a clean towel"),
			},
		},
		{
			ID:          "demo-collection-3",
			Name:        "Bedtime Routine",
			OwnerUserID: DemoOwnerUserID,
			Demo:        true,
			CreatedAt:   now,
			UpdatedAt:   now,
			Cards: []domain.VisualCard{
				card("bedtime-1", "Put on Pajamas", "Change into comfortable sleepwear"),
				card("bedtime-2", "Brush Teeth", "Brush teeth before bed"),
				card("bedtime-3", "Read a Story", "Enjoy a bedtime story"),
				card("bedtime-4", "Turn Off Lights", "Make the room dark and quiet"),
				card("bedtime-5", "Go to Sleep", "Close your eyes and rest"),
			},
		},
		{
			ID:          "demo-collection-4",
			Name:        "Making a Sandwich",
			OwnerUserID: DemoOwnerUserID,
			Demo:        true,
			CreatedAt:   now,
			UpdatedAt:   now,
			Cards: []domain.VisualCard{
				card("sandwich-1", "Wash Hands", "Clean your hands before cooking"),
				card("sandwich-2", "Get Ingredients", "Take out bread, spread, and fillings"),
				card("sandwich-3", "Spread on Bread", "Put butter or spread on one slice"),
				card("sandwich-4", "Add Fillings", "Place your favorite ingredients"),
				card("sandwich-5", "Close Sandwich", "Put the second slice on top"),
				card("sandwich-6", "Cut and Serve", "Cut the sandwich and enjoy"),
			},
		},
	}
}
