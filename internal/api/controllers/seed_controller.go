package controllers

import (
	"github.com/gin-gonic/gin"

	"astrasafe/internal/services"
	"astrasafe/pkg/utils"
)

type SeedController struct {
	seedService services.SeedServiceInterface
}

func NewSeedController(seedService services.SeedServiceInterface) *SeedController {
	return &SeedController{
		seedService: seedService,
	}
}

func (s *SeedController) Seed(c *gin.Context) {
	inserted, err := s.seedService.Seed(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	message := "Demo directory seeded"
	if inserted == 0 {
		message = "Directory already populated"
	}
	utils.RespondSuccess(c, gin.H{"inserted": inserted}, message)
}
