package health

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Serve runs the liveness endpoint: 200 OK on any GET. Blocks; run it
// in a goroutine from main.
func Serve(port int) error {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.GET("/*", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	return e.Start(fmt.Sprintf(":%d", port))
}
