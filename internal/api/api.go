package api

import (
	"net/http"

	authHandler "leads-server/internal/auth/handler"
	billingHandler "leads-server/internal/billing/handler"
	composeHandler "leads-server/internal/compose/handler"
	campaignHandler "leads-server/internal/emailcampaigns/handler"
	leadsHandler "leads-server/internal/leads/handler"
	"leads-server/internal/ratelimit"
	referralHandler "leads-server/internal/referral/handler"

	"github.com/gin-gonic/gin"
)

type API struct {
	router          *gin.RouterGroup
	authHandler     authHandler.Handler
	leadsHandler    leadsHandler.Handler
	campaignHandler campaignHandler.Handler
	referralHandler referralHandler.Handler
	composeHandler  composeHandler.Handler
	billingHandler  billingHandler.Handler
	rateLimiter     *ratelimit.Service
	rateLimitRPM    int
}

func New(
	router *gin.RouterGroup,
	authHandler authHandler.Handler,
	leadsHandler leadsHandler.Handler,
	campaignHandler campaignHandler.Handler,
	referralHandler referralHandler.Handler,
	composeHandler composeHandler.Handler,
	billingHandler billingHandler.Handler,
	rateLimiter *ratelimit.Service,
	rateLimitRPM int,
) API {
	return API{
		router:          router,
		authHandler:     authHandler,
		leadsHandler:    leadsHandler,
		campaignHandler: campaignHandler,
		referralHandler: referralHandler,
		composeHandler:  composeHandler,
		billingHandler:  billingHandler,
		rateLimiter:     rateLimiter,
		rateLimitRPM:    rateLimitRPM,
	}
}

func (a *API) RegisterRoutes() {
	a.Health()
	apiGroup := a.router.Group("/api")

	adminGroup := apiGroup.Group("/admin", a.authHandler.HandleJWTMiddleware, a.authHandler.HandleAdminMiddleware)
	{
		adminGroup.POST("/leads/upload", a.leadsHandler.HandleUploadLeads)
		adminGroup.GET("/leads", a.leadsHandler.HandleListLeads)
		adminGroup.GET("/leads/export", a.leadsHandler.HandleExportLeads)
		adminGroup.GET("/get-lead/:id", a.leadsHandler.HandleGetLead)
		adminGroup.PUT("/update-leads/:id", a.leadsHandler.HandleUpdateLead)
		adminGroup.DELETE("/leads/:id", a.leadsHandler.HandleDeleteLead)
		adminGroup.POST("/leads/email", a.campaignHandler.HandleSendCampaign)
		adminGroup.GET("/email-feedback", a.campaignHandler.HandleListFeedback)
	}

	referralGroup := apiGroup.Group("/referrals")
	{
		referralGroup.GET("/validate/:code",
			a.rateLimiter.Middleware("referral_validate", a.rateLimitRPM),
			a.referralHandler.HandleValidateReferralCode)
		referralGroup.GET("/my-referrals", a.authHandler.HandleJWTMiddleware, a.referralHandler.HandleGetMyReferrals)
		referralGroup.GET("/stats", a.authHandler.HandleJWTMiddleware, a.referralHandler.HandleGetReferralStats)
	}

	apiGroup.POST("/compose",
		a.authHandler.HandleJWTMiddleware,
		a.rateLimiter.Middleware("compose", a.rateLimitRPM),
		a.composeHandler.HandleCompose)

	apiGroup.POST("/billing/webhook", a.billingHandler.HandleWebhook)
}

func (a *API) Health() {
	a.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "ok"})
	})
}
