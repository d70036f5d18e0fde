package docs

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OpenAPI specification served at /openapi.json
const openapiJSON = `{
  "openapi": "3.0.3",
  "info": {
    "title": "arkclinic Gateway API",
    "version": "0.1.0"
  },
  "servers": [ { "url": "/" } ],
  "tags": [
    {"name": "files", "description": "Clinical data uploads"},
    {"name": "reports", "description": "Generated reports"}
  ],
  "components": {
    "securitySchemes": {
      "bearerAuth": {
        "type": "http",
        "scheme": "bearer",
        "bearerFormat": "JWT"
      }
    },
    "parameters": {
      "reportId": {"name":"id","in":"path","required":true,"schema":{"type":"string","format":"uuid"}},
      "page": {"name":"page","in":"query","schema":{"type":"integer","minimum":1,"default":1}},
      "pageSize": {"name":"page_size","in":"query","schema":{"type":"integer","minimum":1,"maximum":100,"default":20}}
    }
  },
  "security": [{"bearerAuth": []}],
  "paths": {
    "/health": {
      "get": {"summary": "Liveness probe","security": [],"responses": {"200": {"description": "OK"}}}
    },
    "/api/files/upload": {
      "post": {
        "summary": "Upload a clinical data file (.csv, .xlsx, .xls, .json, .xml, .txt) and extract its content",
        "tags": ["files"],
        "requestBody": {"required": true, "content": {"multipart/form-data": {"schema": {"type":"object","properties":{"file":{"type":"string","format":"binary"}},"required":["file"]}}}},
        "responses": {
          "200": {"description": "Processed, status completed"},
          "400": {"description": "Missing or empty file"},
          "413": {"description": "File too large"},
          "502": {"description": "Stored but extraction failed, status error"}
        }
      }
    },
    "/api/files": {
      "get": {"summary": "List uploaded files, newest first","tags": ["files"],"parameters": [{"$ref":"#/components/parameters/page"},{"$ref":"#/components/parameters/pageSize"}],"responses": {"200": {"description": "OK"}}}
    },
    "/api/files/{id}": {
      "get": {"summary": "Get one upload with its processing status","tags": ["files"],"parameters": [{"name":"id","in":"path","required":true,"schema":{"type":"string","format":"uuid"}}],"responses": {"200": {"description": "OK"},"404": {"description": "Not found"}}}
    },
    "/api/reports": {
      "post": {
        "summary": "Generate a report from all completed files",
        "tags": ["reports"],
        "requestBody": {"required": false, "content": {"application/json": {"schema": {"type":"object","properties":{"report_type":{"type":"string","enum":["clinical_summary","compliance_report","data_validation","audit_trail"],"default":"clinical_summary"}}}}}},
        "responses": {
          "201": {"description": "Created"},
          "400": {"description": "Unknown report type"},
          "422": {"description": "No processed data available"},
          "502": {"description": "Inference failed"}
        }
      },
      "get": {"summary": "List generated reports","tags": ["reports"],"parameters": [{"$ref":"#/components/parameters/page"},{"$ref":"#/components/parameters/pageSize"}],"responses": {"200": {"description": "OK"}}}
    },
    "/api/reports/{id}": {
      "get": {"summary": "Get a report","tags": ["reports"],"parameters": [{"$ref":"#/components/parameters/reportId"}],"responses": {"200": {"description": "OK"},"404": {"description": "Not found"}}}
    },
    "/api/reports/{id}/download": {
      "get": {
        "summary": "Download a report as an attachment",
        "tags": ["reports"],
        "parameters": [{"$ref":"#/components/parameters/reportId"},{"name":"format","in":"query","schema":{"type":"string","enum":["json","pdf"],"default":"json"}}],
        "responses": {"200": {"description": "Attachment"},"404": {"description": "Not found"}}
      }
    }
  }
}`

// RegisterRoutes wires the API documentation endpoints into the Gin engine.
// - GET /openapi.json: OpenAPI 3.0 spec
// - GET /docs: Swagger UI (via CDN) loading /openapi.json
func RegisterRoutes(r *gin.Engine) {
	r.GET("/", func(c *gin.Context) { c.Redirect(http.StatusFound, "/docs") })
	r.GET("/openapi.json", func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", []byte(openapiJSON))
	})
	r.GET("/docs", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(swaggerHTML))
	})
}

const swaggerHTML = `<!doctype html>
<html>
<head>
  <meta charset="utf-8"/>
  <title>arkclinic API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
  <style>body { margin: 0; padding: 0; }</style>
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js" crossorigin></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.json',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
 </body>
</html>`
