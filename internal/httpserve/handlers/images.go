package handlers

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/wharfd/wharfd/internal/domain"
	"github.com/wharfd/wharfd/internal/server"
)

// ImageList handles GET /api/images.
func ImageList(c echo.Context, a *server.App) error {
	env, status := a.Images.List(c.Request().Context(), c.QueryParam("all"))
	return respond(c, env, status)
}

// ImageGet handles GET /api/images/*. The wildcard keeps slashes and
// colons in the reference intact.
func ImageGet(c echo.Context, a *server.App) error {
	env, status := a.Images.Get(c.Request().Context(), imageRef(c))
	return respond(c, env, status)
}

// ImagePull handles POST /api/images/pull.
func ImagePull(c echo.Context, a *server.App) error {
	var req domain.ImagePullRequest
	if err := bindJSON(c, &req); err != nil {
		return respondErr(c, err)
	}
	env, status := a.Images.Pull(c.Request().Context(), req)
	return respond(c, env, status)
}

// ImageBuild handles POST /api/images/build.
func ImageBuild(c echo.Context, a *server.App) error {
	var req domain.ImageBuildRequest
	if err := bindJSON(c, &req); err != nil {
		return respondErr(c, err)
	}
	env, status := a.Images.Build(c.Request().Context(), req)
	return respond(c, env, status)
}

// ImageRemove handles DELETE /api/images/*.
func ImageRemove(c echo.Context, a *server.App) error {
	env, status := a.Images.Remove(c.Request().Context(), imageRef(c),
		c.QueryParam("force"), c.QueryParam("no_prune"))
	return respond(c, env, status)
}

// ImageSearch handles GET /api/images/search.
func ImageSearch(c echo.Context, a *server.App) error {
	env, status := a.Images.Search(c.Request().Context(),
		c.QueryParam("term"), c.QueryParam("limit"))
	return respond(c, env, status)
}

// ImagePrune handles POST /api/images/prune.
func ImagePrune(c echo.Context, a *server.App) error {
	env, status := a.Images.Prune(c.Request().Context(), c.QueryParam("dangling_only"))
	return respond(c, env, status)
}

// imageRef extracts the image reference from the wildcard segment. A
// trailing /remove is accepted and stripped so both delete forms work.
func imageRef(c echo.Context) string {
	ref := c.Param("*")
	ref = strings.TrimSuffix(ref, "/remove")
	return strings.TrimPrefix(ref, "/")
}
