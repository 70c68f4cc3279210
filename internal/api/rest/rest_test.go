package rest_test

import (
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/crosslot/auction-house/internal/api/middleware"
	"github.com/crosslot/auction-house/internal/api/rest"
	"github.com/crosslot/auction-house/internal/logger"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := logger.Initialize(logger.Config{Debug: false}); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// stubHandler answers every route with 200 so the tests observe only the
// middleware in front of it
type stubHandler struct{}

func (stubHandler) CreateAuction(c *gin.Context)        { c.Status(http.StatusOK) }
func (stubHandler) ListAuctions(c *gin.Context)         { c.Status(http.StatusOK) }
func (stubHandler) GetAuction(c *gin.Context)           { c.Status(http.StatusOK) }
func (stubHandler) GetWinner(c *gin.Context)            { c.Status(http.StatusOK) }
func (stubHandler) FinalizeAuction(c *gin.Context)      { c.Status(http.StatusOK) }
func (stubHandler) ReleaseAsset(c *gin.Context)         { c.Status(http.StatusOK) }
func (stubHandler) PlaceBidNative(c *gin.Context)       { c.Status(http.StatusOK) }
func (stubHandler) PlaceBidToken(c *gin.Context)        { c.Status(http.StatusOK) }
func (stubHandler) ListCrossChainBids(c *gin.Context)   { c.Status(http.StatusOK) }
func (stubHandler) GetCrossChainBid(c *gin.Context)     { c.Status(http.StatusOK) }
func (stubHandler) SendBid(c *gin.Context)              { c.Status(http.StatusOK) }
func (stubHandler) ListOutboundMessages(c *gin.Context) { c.Status(http.StatusOK) }
func (stubHandler) ListRefunds(c *gin.Context)          { c.Status(http.StatusOK) }
func (stubHandler) WithdrawRefunds(c *gin.Context)      { c.Status(http.StatusOK) }
func (stubHandler) DepositFunds(c *gin.Context)         { c.Status(http.StatusOK) }
func (stubHandler) SetAllowlistEntry(c *gin.Context)    { c.Status(http.StatusOK) }
func (stubHandler) ListAllowlist(c *gin.Context)        { c.Status(http.StatusOK) }
func (stubHandler) HealthCheck(c *gin.Context)          { c.Status(http.StatusOK) }

func setupTestRouter() *gin.Engine {
	router := gin.New()
	rest.SetupRoutes(router, stubHandler{}, middleware.AuthConfig{
		APIKeys: []string{"test-key"},
	})
	return router
}

func TestRouteAuthentication(t *testing.T) {
	router := setupTestRouter()

	tests := []struct {
		name     string
		method   string
		path     string
		auth     string
		expected int
	}{
		// anyone may settle an ended auction, no credentials needed
		{"finalize is permissionless", http.MethodPost, "/api/v1/auctions/a1/finalize", "", http.StatusOK},
		{"bidding is open", http.MethodPost, "/api/v1/auctions/a1/bids/native", "", http.StatusOK},
		{"reads are open", http.MethodGet, "/api/v1/auctions", "", http.StatusOK},
		{"withdrawals are open", http.MethodPost, "/api/v1/refunds/0xabc/withdraw", "", http.StatusOK},

		{"create requires credentials", http.MethodPost, "/api/v1/auctions", "", http.StatusUnauthorized},
		{"release requires credentials", http.MethodPost, "/api/v1/auctions/a1/release", "", http.StatusUnauthorized},
		{"relay requires credentials", http.MethodPost, "/api/v1/relay/bids", "", http.StatusUnauthorized},
		{"allowlist requires an api key", http.MethodPut, "/api/v1/allowlist", "", http.StatusUnauthorized},
		{"deposits require an api key", http.MethodPost, "/api/v1/escrow/deposits", "", http.StatusUnauthorized},

		{"create accepts an api key", http.MethodPost, "/api/v1/auctions", "APIKey test-key", http.StatusOK},
		{"allowlist accepts an api key", http.MethodPut, "/api/v1/allowlist", "APIKey test-key", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, nil)
			if tt.auth != "" {
				req.Header.Set("Authorization", tt.auth)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)
			assert.Equal(t, tt.expected, rec.Code)
		})
	}
}
