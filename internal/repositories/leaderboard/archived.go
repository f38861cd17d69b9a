package leaderboard

import (
	"context"
	"errors"

	"github.com/KirkDiggler/wordduel/internal/common/logger"
	"github.com/KirkDiggler/wordduel/internal/models"
	"go.uber.org/zap"
)

// ArchivedConfig holds configuration for a primary store mirrored to an archive
type ArchivedConfig struct {
	Primary Repository
	Archive Repository
	Logger  *zap.SugaredLogger
}

// archivedRepository writes to the primary store and mirrors to the archive.
// Reads are served from the primary and fall back to the archive when the
// primary has no snapshot, such as after a cache flush.
type archivedRepository struct {
	primary Repository
	archive Repository
	log     *zap.SugaredLogger
}

// NewArchived creates a repository that mirrors saved snapshots to an archive
func NewArchived(cfg *ArchivedConfig) (*archivedRepository, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Primary == nil || cfg.Archive == nil {
		return nil, errors.New("primary and archive repositories are required")
	}

	return &archivedRepository{
		primary: cfg.Primary,
		archive: cfg.Archive,
		log:     logger.OrNop(cfg.Logger),
	}, nil
}

// SaveSnapshot saves to the primary store; an archive failure is logged only
func (r *archivedRepository) SaveSnapshot(ctx context.Context, input *SaveSnapshotInput) error {
	if err := r.primary.SaveSnapshot(ctx, input); err != nil {
		return err
	}

	if err := r.archive.SaveSnapshot(ctx, input); err != nil {
		r.log.Warnw("failed to archive leaderboard snapshot",
			"difficulty", input.Snapshot.Difficulty, "error", err)
	}

	return nil
}

// GetSnapshot reads from the primary store, then the archive on a miss
func (r *archivedRepository) GetSnapshot(ctx context.Context, input *GetSnapshotInput) (*models.LeaderboardSnapshot, error) {
	snapshot, err := r.primary.GetSnapshot(ctx, input)
	if !errors.Is(err, ErrSnapshotNotFound) {
		return snapshot, err
	}

	snapshot, archiveErr := r.archive.GetSnapshot(ctx, input)
	if archiveErr != nil {
		if !errors.Is(archiveErr, ErrSnapshotNotFound) {
			r.log.Warnw("failed to read archived leaderboard snapshot",
				"difficulty", input.Difficulty, "error", archiveErr)
		}
		return nil, err
	}

	return snapshot, nil
}
