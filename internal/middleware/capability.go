package middleware

import (
	"wellship/internal/auth"

	"github.com/gin-gonic/gin"
)

// Capability names one action a route may require.
// Roles map to capability sets in ONE place below; handlers
// and route groups never inspect roles directly.
type Capability string

const (
	CapReadPlan        Capability = "read-plan"
	CapWriteAdjustment Capability = "write-adjustment"
	CapManageCompany   Capability = "manage-company"
)

var roleCapabilities = map[string][]Capability{
	auth.RoleCrew:    {CapReadPlan},
	auth.RoleChef:    {CapReadPlan, CapWriteAdjustment},
	auth.RoleManager: {CapReadPlan, CapWriteAdjustment, CapManageCompany},
	auth.RoleAdmin:   {CapReadPlan, CapWriteAdjustment, CapManageCompany},
}

func roleHasCapability(role string, cap Capability) bool {
	for _, granted := range roleCapabilities[role] {
		if granted == cap {
			return true
		}
	}
	return false
}

func RequireCapability(cap Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("userRole")
		if !exists {
			c.AbortWithStatusJSON(403, gin.H{"error": "role missing"})
			return
		}

		roleStr, ok := role.(string)
		if !ok || !roleHasCapability(roleStr, cap) {
			c.AbortWithStatusJSON(403, gin.H{"error": "forbidden"})
			return
		}

		c.Next()
	}
}
