// Package principal moves the authenticated user id across the gRPC boundary.
package principal

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc/metadata"
)

const MetadataKey = "x-user-id"

var ErrMissing = errors.New("principal: missing or invalid user id")

// FromIncomingContext returns the caller's user id. A missing, empty or
// malformed value yields ErrMissing.
func FromIncomingContext(ctx context.Context) (uuid.UUID, error) {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return uuid.Nil, ErrMissing
	}
	vals := md.Get(MetadataKey)
	if len(vals) == 0 {
		return uuid.Nil, ErrMissing
	}
	id, err := uuid.Parse(strings.TrimSpace(vals[0]))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, ErrMissing
	}
	return id, nil
}

// WithUserID attaches userID to outgoing calls. Blank ids are not forwarded.
func WithUserID(ctx context.Context, userID string) context.Context {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return ctx
	}
	return metadata.AppendToOutgoingContext(ctx, MetadataKey, userID)
}
