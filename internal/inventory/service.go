package inventory

import (
	"context"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/osse101/netitem/internal/logger"
	"github.com/osse101/netitem/internal/netitem"
	"github.com/osse101/netitem/internal/repository"
)

// Service defines the interface for inventory operations
type Service interface {
	GetSnapshot(ctx context.Context, playerID string) (Snapshot, error)
	SaveSnapshot(ctx context.Context, playerID string, snap Snapshot) error
	SaveEncoded(ctx context.Context, playerID, raw string, mode Mode) (SaveResult, error)
	DeleteSnapshot(ctx context.Context, playerID string) error
	Layout() []netitem.Region
	Ready(ctx context.Context) error
}

// SaveResult reports what SaveEncoded stored.
type SaveResult struct {
	Occupied int   `json:"occupied"`
	Skipped  []int `json:"skipped,omitempty"`
}

type service struct {
	repo   repository.Inventory
	parser Parser
	cache  *snapshotCache
	tracer trace.Tracer
}

// NewService creates an inventory service. Stored strings are decoded with
// parser in Lenient mode so that one unreadable slot never hides the rest.
func NewService(repo repository.Inventory, parser Parser, cacheCfg CacheConfig) Service {
	return &service{
		repo:   repo,
		parser: parser,
		cache:  newSnapshotCache(cacheCfg),
		tracer: otel.Tracer(tracerName),
	}
}

func (s *service) GetSnapshot(ctx context.Context, playerID string) (Snapshot, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.GetSnapshot",
		trace.WithAttributes(attribute.String(attrPlayerID, playerID)))
	defer span.End()

	if playerID == "" {
		return Snapshot{}, fail(span, ErrInvalidPlayerID)
	}

	if snap, ok := s.cache.Get(playerID); ok {
		span.SetAttributes(attribute.Bool(attrCacheHit, true))
		return snap, nil
	}
	span.SetAttributes(attribute.Bool(attrCacheHit, false))

	raw, err := s.repo.GetInventory(ctx, playerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return Snapshot{}, fail(span, fmt.Errorf("%w: %s", ErrNotFound, playerID))
		}
		return Snapshot{}, fail(span, fmt.Errorf("%s: %w", ErrMsgStoreFailed, err))
	}

	snap, decodeErr := Decode(s.parser, raw, Lenient)
	if errors.Is(decodeErr, ErrTooManySlots) {
		return Snapshot{}, fail(span, decodeErr)
	}
	if skipped := SkippedSlots(decodeErr); len(skipped) > 0 {
		span.SetAttributes(attribute.Int(attrSlotsSkipped, len(skipped)))
		logger.FromContext(ctx).Warn(LogMsgSlotsSkipped, "player_id", playerID, "slots", skipped, "error", decodeErr)
	}

	s.cache.Set(playerID, snap)
	logger.FromContext(ctx).Debug(LogMsgSnapshotLoaded, "player_id", playerID)
	return snap, nil
}

func (s *service) SaveSnapshot(ctx context.Context, playerID string, snap Snapshot) error {
	ctx, span := s.tracer.Start(ctx, "inventory.SaveSnapshot",
		trace.WithAttributes(attribute.String(attrPlayerID, playerID)))
	defer span.End()

	return s.store(ctx, span, playerID, snap)
}

func (s *service) SaveEncoded(ctx context.Context, playerID, raw string, mode Mode) (SaveResult, error) {
	ctx, span := s.tracer.Start(ctx, "inventory.SaveEncoded",
		trace.WithAttributes(
			attribute.String(attrPlayerID, playerID),
			attribute.String(attrDecodeMode, mode.String()),
		))
	defer span.End()

	snap, err := Decode(s.parser, raw, mode)
	if err != nil && (mode == Strict || errors.Is(err, ErrTooManySlots)) {
		return SaveResult{}, fail(span, err)
	}

	result := SaveResult{
		Occupied: len(snap.Occupied()),
		Skipped:  SkippedSlots(err),
	}
	if len(result.Skipped) > 0 {
		span.SetAttributes(attribute.Int(attrSlotsSkipped, len(result.Skipped)))
		logger.FromContext(ctx).Warn(LogMsgSlotsSkipped, "player_id", playerID, "slots", result.Skipped, "error", err)
	}

	if err := s.store(ctx, span, playerID, snap); err != nil {
		return SaveResult{}, err
	}
	return result, nil
}

func (s *service) store(ctx context.Context, span trace.Span, playerID string, snap Snapshot) error {
	if playerID == "" {
		return fail(span, ErrInvalidPlayerID)
	}

	s.cache.Invalidate(playerID)
	if err := s.repo.UpsertInventory(ctx, playerID, snap.Encode()); err != nil {
		return fail(span, fmt.Errorf("%s: %w", ErrMsgStoreFailed, err))
	}
	s.cache.Set(playerID, snap)

	logger.FromContext(ctx).Info(LogMsgSnapshotSaved, "player_id", playerID, "occupied", len(snap.Occupied()))
	return nil
}

func (s *service) DeleteSnapshot(ctx context.Context, playerID string) error {
	ctx, span := s.tracer.Start(ctx, "inventory.DeleteSnapshot",
		trace.WithAttributes(attribute.String(attrPlayerID, playerID)))
	defer span.End()

	if playerID == "" {
		return fail(span, ErrInvalidPlayerID)
	}

	s.cache.Invalidate(playerID)
	if err := s.repo.DeleteInventory(ctx, playerID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return fail(span, fmt.Errorf("%w: %s", ErrNotFound, playerID))
		}
		return fail(span, fmt.Errorf("%s: %w", ErrMsgStoreFailed, err))
	}

	logger.FromContext(ctx).Info(LogMsgSnapshotDeleted, "player_id", playerID)
	return nil
}

func (s *service) Layout() []netitem.Region {
	return netitem.Regions()
}

func (s *service) Ready(ctx context.Context) error {
	return s.repo.Ping(ctx)
}

func fail(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	return err
}
