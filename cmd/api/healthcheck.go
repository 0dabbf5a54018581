package main

import "net/http"

// @Summary Health check
// @Description Reports that the API is up, with its environment and version.
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,system_info=object{environment=string,version=string}}
// @Router /v1/healthcheck [get]
func (app *application) healthcheckHandler(w http.ResponseWriter, r *http.Request) {
	env := envelope{
		"status": "available",
		"system_info": map[string]string{
			"environment": app.config.env,
			"version":     version,
		},
	}

	err := app.writeJSON(w, http.StatusOK, env, nil)
	if err != nil {
		app.serverErrorResponse(w, r, err)
	}
}
