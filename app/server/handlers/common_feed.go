package handlers

import (
	"campo-cidade/app/server/constants"
	"github.com/labstack/echo/v4"
	"net/http"
)

func (a *App) FeedList(c echo.Context) error {
	// 抓取 user 信息（认证）
	_, err, statusCode := a.authUser(c, false)
	if err != nil {
		return a.erAuth(c, err, statusCode)
	}

	entries, err := a.s.ListFeed(c.Request().Context())
	if err != nil {
		return a.ers(c, err, "get feed")
	}

	res := FeedResponse{
		Posts: []FeedEntryInfo{},
	}
	for i := range entries {
		res.Posts = append(res.Posts, a.feedEntryInfo(&entries[i]))
	}
	if len(entries) == 0 {
		res.Message = constants.MsgEmptyFeed
	}

	return c.JSON(http.StatusOK, &res)
}
