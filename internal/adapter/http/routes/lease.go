package routes

import (
	"ikhaya/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeases = "/leases"
)

func addLeaseRoutes(rg *gin.RouterGroup, leaseHandler *handlers.LeaseHandler) {
	leases := rg.Group(PathLeases)
	{
		leases.POST("", leaseHandler.CreateLease)
		leases.GET("", leaseHandler.ListLeases)
		leases.GET("/:id", leaseHandler.GetLease)
		leases.POST("/:id/sign", leaseHandler.SignLease)
		leases.POST("/:id/terminate", leaseHandler.TerminateLease)
	}
}
