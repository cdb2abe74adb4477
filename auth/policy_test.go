package auth_test

import (
	"testing"

	"github.com/ksalau/learnflow-backend/auth"
	"github.com/stretchr/testify/assert"
)

func TestAdminPolicy_Allows(t *testing.T) {
	policy := auth.NewAdminPolicy([]string{" Admin@Example.com ", "", "second@example.com"})

	assert.True(t, policy.Allows("admin@example.com"))
	assert.True(t, policy.Allows("ADMIN@EXAMPLE.COM"))
	assert.True(t, policy.Allows("  second@example.com "))
	assert.False(t, policy.Allows("other@example.com"))
	assert.False(t, policy.Allows(""))
}

func TestAdminPolicy_EmptyListAllowsNobody(t *testing.T) {
	policy := auth.NewAdminPolicy(nil)
	assert.False(t, policy.Allows("anyone@example.com"))
}
