//go:build unit

package api_test

import (
	"net/http"

	"stable-booking/internal/domain/user"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const bearer = "bearer-token"

// handlerSuite carries the router and the identity the stub auth middleware
// injects for every authenticated request.
type handlerSuite struct {
	suite.Suite
	router   *gin.Engine
	mockCtrl *gomock.Controller
	userID   uuid.UUID
	role     user.Role
}

func (s *handlerSuite) setupRouter() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()
	s.mockCtrl = gomock.NewController(s.T())
	s.userID = uuid.New()
	s.role = user.RoleRider
}

// Mock authentication middleware for testing
func (s *handlerSuite) authMiddleware(c *gin.Context) {
	if c.GetHeader("Authorization") == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Access token required"}})
		return
	}
	c.Set("user_id", s.userID)
	c.Set("user_role", s.role)
	c.Next()
}

func (s *handlerSuite) TearDownTest() {
	s.mockCtrl.Finish()
}
