package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/prompt-playground/internal/api/middleware"
	"github.com/povarna/prompt-playground/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.GET("/techniques").
			To(handler.ListTechniques).
			Doc("List registered prompting techniques").
			Metadata(restfulspec.KeyOpenAPITags, []string{"techniques"}).
			Writes(TechniqueListResponse{}).
			Returns(200, "OK", TechniqueListResponse{}))

	ws.
		Route(ws.POST("/techniques/{technique_name}/run").
			To(handler.RunTechnique).
			Doc("Run a single prompting technique").
			Metadata(restfulspec.KeyOpenAPITags, []string{"techniques"}).
			Param(ws.PathParameter("technique_name", "Technique name, e.g. 'Zero-Shot Prompting'").DataType("string")).
			Writes(models.Result{}).
			Returns(200, "OK", models.Result{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Technique Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/compare").
			To(handler.Compare).
			Doc("Compare multiple techniques with a shared prompt").
			Metadata(restfulspec.KeyOpenAPITags, []string{"compare"}).
			Reads(CompareRequest{}).
			Writes(models.ComparisonResult{}).
			Returns(200, "OK", models.ComparisonResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.GET("/templates").
			To(handler.ListTemplates).
			Doc("List the prompt template catalog").
			Metadata(restfulspec.KeyOpenAPITags, []string{"templates"}).
			Returns(200, "OK", map[string]map[string]string{}))

	ws.
		Route(ws.POST("/templates/fill").
			To(handler.FillTemplate).
			Doc("Fill a prompt template with values").
			Metadata(restfulspec.KeyOpenAPITags, []string{"templates"}).
			Reads(FillTemplateRequest{}).
			Writes(FilledTemplateResponse{}).
			Returns(200, "OK", FilledTemplateResponse{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Template Not Found", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/demonstrations/{technique_name}").
			To(handler.RecordDemonstration).
			Doc("Run a technique and persist the demonstration record").
			Metadata(restfulspec.KeyOpenAPITags, []string{"demonstrations"}).
			Param(ws.PathParameter("technique_name", "Technique name, e.g. 'Zero-Shot Prompting'").DataType("string")).
			Writes(models.DemonstrationRecord{}).
			Returns(200, "OK", models.DemonstrationRecord{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(404, "Technique Not Found", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	container.Add(ws)
}
