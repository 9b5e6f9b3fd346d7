package v1

import (
	"net/http"

	"portfolio-backend/internal/delivery/http/response"
	"portfolio-backend/internal/domain"

	"github.com/gin-gonic/gin"
)

type PortfolioHandler struct {
	portfolioUC domain.PortfolioUsecase
}

func NewPortfolioHandler(public *gin.RouterGroup, portfolioUC domain.PortfolioUsecase) {
	handler := &PortfolioHandler{portfolioUC: portfolioUC}

	public.GET("/portfolio", handler.Get)

	projects := public.Group("/projects")
	{
		projects.GET("", handler.ListProjects)
		projects.GET("/categories", handler.Categories)
		projects.GET("/:slug", handler.GetProject)
	}
}

// Get godoc
// @Summary      Portfolio content
// @Description  Profile, skills, projects, experience, testimonials and credentials.
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=domain.Portfolio}
// @Router       /portfolio [get]
func (h *PortfolioHandler) Get(c *gin.Context) {
	response.Success(c, http.StatusOK, "Portfolio retrieved", h.portfolioUC.Get(c.Request.Context()))
}

// ListProjects godoc
// @Summary      List projects
// @Description  Filters by category; empty or "all" returns every project.
// @Tags         portfolio
// @Produce      json
// @Param        category  query     string  false  "Project category"
// @Success      200       {object}  response.Response{data=[]domain.Project}
// @Router       /projects [get]
func (h *PortfolioHandler) ListProjects(c *gin.Context) {
	projects := h.portfolioUC.ListProjects(c.Request.Context(), c.Query("category"))
	response.Success(c, http.StatusOK, "Projects retrieved", projects)
}

// Categories godoc
// @Summary      Project categories
// @Tags         portfolio
// @Produce      json
// @Success      200  {object}  response.Response{data=[]string}
// @Router       /projects/categories [get]
func (h *PortfolioHandler) Categories(c *gin.Context) {
	response.Success(c, http.StatusOK, "Categories retrieved", h.portfolioUC.Categories(c.Request.Context()))
}

// GetProject godoc
// @Summary      Get project
// @Tags         portfolio
// @Produce      json
// @Param        slug  path      string  true  "Project slug"
// @Success      200   {object}  response.Response{data=domain.Project}
// @Failure      404   {object}  response.Response
// @Router       /projects/{slug} [get]
func (h *PortfolioHandler) GetProject(c *gin.Context) {
	project, err := h.portfolioUC.GetProject(c.Request.Context(), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	response.Success(c, http.StatusOK, "Project retrieved", project)
}
