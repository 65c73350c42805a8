package bind

import (
	"github.com/labstack/echo/v4"
	"github.com/richcrm/richcrm/api/rest/controller/tasktemplate"
	"github.com/richcrm/richcrm/api/rest/controller/template"
)

func All(g *echo.Group) {
	// task templates
	{
		g.GET("/tasktemplates", tasktemplate.List)
		g.GET("/tasktemplates/:id", tasktemplate.Get)
		g.POST("/tasktemplates", tasktemplate.Post)
		g.POST("/tasktemplates/seed", tasktemplate.Seed)
		g.DELETE("/tasktemplates/:id", tasktemplate.Delete)
	}

	// email templates
	{
		g.GET("/templates/:title", template.Get)
		g.POST("/templates", template.Post)
		g.DELETE("/templates/:title", template.Delete)
	}
}
