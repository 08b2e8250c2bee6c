package service

import (
	"errors"

	"connectrpc.com/connect"

	"github.com/mmynk/shoplist/internal/export"
	"github.com/mmynk/shoplist/internal/storage"
)

// toConnectError maps store and exporter errors to Connect codes.
func toConnectError(err error) *connect.Error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return connect.NewError(connect.CodeNotFound, err)
	case errors.Is(err, storage.ErrDuplicateName):
		return connect.NewError(connect.CodeAlreadyExists, err)
	case errors.Is(err, export.ErrNotConfigured):
		return connect.NewError(connect.CodeFailedPrecondition, err)
	default:
		return connect.NewError(connect.CodeInternal, err)
	}
}

func invalidArgument(err error) *connect.Error {
	return connect.NewError(connect.CodeInvalidArgument, err)
}
