package faultutil

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFaultKindsMapToStatuses(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, ToFault(NewValidation("bad")).HTTPStatus())
	assert.Equal(t, http.StatusNotFound, ToFault(NewNotFound("gone")).HTTPStatus())
	assert.Equal(t, http.StatusBadGateway, ToFault(NewTransport("down", nil)).HTTPStatus())
	assert.Equal(t, http.StatusInternalServerError, ToFault(NewInternal(errors.New("boom"))).HTTPStatus())
}

func TestToFaultWrapsPlainErrorsAsInternal(t *testing.T) {
	fault := ToFault(errors.New("boom"))
	assert.Equal(t, KindInternal, fault.Kind)
	assert.Nil(t, ToFault(nil))
}

func TestIsKindSeesThroughWrapping(t *testing.T) {
	err := fmt.Errorf("submit: %w", NewValidation("Email is required"))

	assert.True(t, IsKind(err, KindValidation))
	assert.False(t, IsKind(err, KindNotFound))
	assert.Equal(t, "Email is required", Message(err))
}

func TestMessageFallsBackToErrorText(t *testing.T) {
	assert.Equal(t, "boom", Message(errors.New("boom")))
	assert.Equal(t, "", Message(nil))
}
