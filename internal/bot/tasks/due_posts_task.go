package tasks

import (
	"context"
	"fmt"
	"time"

	"github.com/go-telegram/bot"
)

// newDuePostsTask creates the scheduled task function that delivers
// scheduled posts whose time has come. Each delivered post is marked sent
// so it is never delivered twice. A post that fails to send stays unsent
// and is retried on the next run.
func newDuePostsTask(deps TaskDeps) ScheduledTaskFunc {
	log := deps.Logger.With("task", "due_posts")

	return func(ctx context.Context) error {
		now := time.Now().UTC()

		posts, err := deps.Store.GetDuePosts(ctx, now)
		if err != nil {
			log.ErrorContext(ctx, "Failed to fetch due posts", "error", err)
			return fmt.Errorf("fetching due posts: %w", err)
		}

		if len(posts) == 0 {
			return nil
		}

		log.InfoContext(ctx, "Delivering due posts", "count", len(posts))

		var failed int
		for _, post := range posts {
			if ctx.Err() != nil {
				return ctx.Err()
			}

			_, err := deps.Bot.SendMessage(ctx, &bot.SendMessageParams{
				ChatID: post.ChatID,
				Text:   post.Content,
			})
			if err != nil {
				failed++
				log.ErrorContext(ctx, "Failed to deliver post", "error", err, "post_id", post.ID, "chat_id", post.ChatID)
				continue
			}

			if err := deps.Store.MarkPostSent(ctx, post.ID); err != nil {
				failed++
				log.ErrorContext(ctx, "Failed to mark post sent", "error", err, "post_id", post.ID)
			}
		}

		if failed > 0 {
			return fmt.Errorf("due posts task: %d of %d posts failed", failed, len(posts))
		}
		return nil
	}
}
