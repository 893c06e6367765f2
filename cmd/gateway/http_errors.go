package main

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// httpStatusFromGRPC returns the HTTP status, a stable error code and the
// message to show the client. Internal details never leave the gateway.
func httpStatusFromGRPC(err error) (int, string, string) {
	st, ok := status.FromError(err)
	if !ok {
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return http.StatusBadRequest, "INVALID_ARGUMENT", st.Message()
	case codes.Unauthenticated:
		return http.StatusUnauthorized, "UNAUTHENTICATED", st.Message()
	case codes.PermissionDenied:
		return http.StatusForbidden, "PERMISSION_DENIED", st.Message()
	case codes.NotFound:
		return http.StatusNotFound, "NOT_FOUND", st.Message()
	case codes.Aborted, codes.AlreadyExists:
		return http.StatusConflict, "CONFLICT", st.Message()
	case codes.FailedPrecondition:
		return http.StatusUnprocessableEntity, "FAILED_PRECONDITION", st.Message()
	case codes.Unavailable, codes.DeadlineExceeded:
		return http.StatusServiceUnavailable, "UNAVAILABLE", "service unavailable"
	default:
		return http.StatusInternalServerError, "INTERNAL", "internal error"
	}
}

func writeError(c *gin.Context, err error) {
	code, reason, msg := httpStatusFromGRPC(err)
	c.AbortWithStatusJSON(code, gin.H{"error": errorBody{Code: reason, Message: msg}})
}

func badRequest(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": errorBody{Code: "INVALID_ARGUMENT", Message: msg}})
}
