package app

import (
	"context"
	"log"

	internalApp "mawasim/internal/app"
	"mawasim/pkg/handlers"
	"mawasim/pkg/middleware"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

// RegisterRoutes configures all application routes and starts the
// background reminder sweep.
func RegisterRoutes(pb *pocketbase.PocketBase, c *internalApp.Container) {
	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {
		// Warm the catalog mirror before serving any request that
		// reads from it.
		if err := c.Catalog.Load(); err != nil {
			return err
		}

		if c.Reminders != nil {
			ctx, cancel := context.WithCancel(context.Background())
			pb.OnTerminate().BindFunc(func(te *core.TerminateEvent) error {
				cancel()
				return te.Next()
			})
			go c.Reminders.Run(ctx)
			log.Println("reminder sweep started")
		}

		dashboard := &handlers.DashboardHandler{Catalog: c.Catalog, Studio: c.Studio}
		calendar := &handlers.CalendarHandler{Catalog: c.Catalog}
		events := &handlers.EventHandler{Catalog: c.Catalog}
		merchants := &handlers.MerchantHandler{Merchants: c.Merchants}
		studio := &handlers.StudioHandler{Studio: c.Studio}
		profile := &handlers.ProfileHandler{Merchants: c.Merchants}
		stream := handlers.NewStreamHandler(c.Broker, c.StreamSecret)

		// Merchant surface.
		merchantGroup := se.Router.Group("/api")
		merchantGroup.BindFunc(middleware.RequireMerchant(pb))

		merchantGroup.GET("/dashboard", dashboard.GetDashboard)
		merchantGroup.GET("/calendar/{year}/{month}", calendar.GetMonth)

		merchantGroup.POST("/studio/copy", studio.GenerateCopy)
		merchantGroup.POST("/studio/image", studio.GenerateImage)
		merchantGroup.POST("/studio/video", studio.GenerateVideo)
		merchantGroup.GET("/studio/video/{id}", studio.DownloadVideo)
		merchantGroup.GET("/studio/contents", studio.ListContents)

		merchantGroup.GET("/profile", profile.GetProfile)
		merchantGroup.PATCH("/profile", profile.UpdateProfile)
		merchantGroup.POST("/profile/device", profile.RegisterDevice)

		// Admin surface.
		adminGroup := se.Router.Group("/api/admin")
		adminGroup.BindFunc(middleware.RequireAdmin(pb))

		adminGroup.GET("/events", events.ListEvents)
		adminGroup.POST("/events", events.UpsertEvent)
		adminGroup.DELETE("/events/{id}", events.DeleteEvent)

		adminGroup.GET("/merchants", merchants.ListMerchants)
		adminGroup.POST("/merchants", merchants.CreateMerchant)
		adminGroup.PATCH("/merchants/{id}", merchants.UpdateMerchant)
		adminGroup.DELETE("/merchants/{id}", merchants.DeleteMerchant)
		adminGroup.GET("/merchants/export", merchants.ExportMerchants)

		// Live streams authenticate with a short-lived token in the
		// query string, EventSource cannot set headers.
		se.Router.POST("/api/stream/token", stream.IssueToken)
		se.Router.GET("/api/stream/admin", stream.StreamAdmin)
		se.Router.GET("/api/stream/merchants/{id}", stream.StreamMerchant)

		return se.Next()
	})
}
