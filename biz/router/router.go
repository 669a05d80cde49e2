package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"github.com/bitsea/gamebay/biz/handler"
)

// Register configures the HTTP routes for the platform APIs.
func Register(r *server.Hertz, games *handler.GameHandler, search *handler.SearchHandler, profiles *handler.ProfileHandler) {
	v1 := r.Group("/api/v1")

	g := v1.Group("/games")
	// Listing doubles as search: a q parameter ranks, its absence lists.
	g.GET("", search.SearchGames)
	g.POST("", games.CreateGame)
	g.GET("/:gameID", games.GetGame)
	g.PUT("/:gameID", games.UpdateGame)
	g.DELETE("/:gameID", games.DeleteGame)
	g.POST("/:gameID/bundle", games.UploadBundle)
	g.DELETE("/:gameID/files", games.DeleteBundle)
	g.POST("/:gameID/screenshot", games.SetScreenshot)
	g.DELETE("/:gameID/screenshot", games.DeleteScreenshot)

	v1.GET("/me/games", games.ListMyGames)

	p := v1.Group("/profile")
	p.GET("/:username", profiles.GetProfile)
	p.PUT("", profiles.UpdateBio)
	p.POST("/avatar", profiles.SetAvatar)
	p.DELETE("/avatar", profiles.DeleteAvatar)

	v1.GET("/search/games", search.SearchGames)
	v1.GET("/search/tags", search.SuggestTags)

	r.GET("/ping", handler.Ping)
}
