package server

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the /v1 query endpoints with rg.
//
//	GET  /v1/nouns/:noun - noun membership and synset ids
//	GET  /v1/distance    - shortest ancestral path length of ?a= and ?b=
//	GET  /v1/sap         - common ancestor synset of ?a= and ?b=
//	POST /v1/outcast     - least related noun of {"nouns": [...]}
func RegisterRoutes(rg *gin.RouterGroup, h *Handlers) {
	rg.GET("/nouns/:noun", h.HandleNoun)
	rg.GET("/distance", h.HandleDistance)
	rg.GET("/sap", h.HandleSAP)
	rg.POST("/outcast", h.HandleOutcast)
}
