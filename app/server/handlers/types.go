package handlers

import (
	"campo-cidade/app/server/images"
	"campo-cidade/app/server/models"
	"campo-cidade/app/server/session"
	"time"
)

type ErrorMessage struct {
	Message string `json:"message"`
}

// Result 是修改状态的操作的响应，rerender 通知界面重新绘制
type Result struct {
	Rerender bool          `json:"rerender"`
	Message  string        `json:"message,omitempty"`
	Warning  string        `json:"warning,omitempty"`
	Session  session.State `json:"session"`
	Data     any           `json:"data,omitempty"`
}

type RegisterRequest struct {
	Name            string `json:"nome" form:"nome"`
	Age             *int   `json:"idade" form:"idade"`
	Phone           string `json:"telefone" form:"telefone"`
	Address         string `json:"endereco" form:"endereco"`
	Email           string `json:"email" form:"email"`
	Password        string `json:"senha" form:"senha"`
	ConfirmPassword string `json:"confirmar_senha" form:"confirmar_senha"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email"`
	Password string `json:"senha" form:"senha"`
}

type NavigateRequest struct {
	View session.View `json:"view" form:"view"`
}

type EditRequest struct {
	GardenID uint `json:"horta_id" form:"horta_id"`
}

type FeedPostRequest struct {
	Description *string `json:"descricao" form:"descricao"`
}

type UserInfo struct {
	ID      uint   `json:"user_id"`
	Name    string `json:"nome"`
	Age     *int   `json:"idade"`
	Phone   string `json:"telefone"`
	Address string `json:"endereco"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"is_admin"`
	Photo   string `json:"foto_perfil"`
}

type GardenInfo struct {
	ID            uint   `json:"horta_id"`
	Name          string `json:"nome_horta"`
	UserID        uint   `json:"usuario_id"`
	Photo         string `json:"foto"`
	Species       string `json:"especie"`
	DaysToHarvest int    `json:"dias_colheita"`
	ContactName   string `json:"contato"`
	Address       string `json:"endereco"`
	ContactEmail  string `json:"email"`
}

type FeedEntryInfo struct {
	ID          uint      `json:"feed_id"`
	Photo       string    `json:"foto"`
	Description *string   `json:"descricao"`
	PostedAt    time.Time `json:"data_postagem"`
	UserName    string    `json:"nome"`
	GardenName  string    `json:"nome_horta"`
	Species     string    `json:"especie"`
}

type HomeResponse struct {
	User    UserInfo      `json:"usuario"`
	Gardens []GardenInfo  `json:"hortas"`
	Message string        `json:"message,omitempty"`
	Session session.State `json:"session"`
}

type GardenListResponse struct {
	Gardens []GardenInfo `json:"hortas"`
	Message string       `json:"message,omitempty"`
}

type FeedResponse struct {
	Posts   []FeedEntryInfo `json:"posts"`
	Message string          `json:"message,omitempty"`
}

// 照片路径都转换为可以访问的 URL ，缺失时使用默认图片

func (a *App) userInfo(user *models.User) UserInfo {
	return UserInfo{
		ID:      user.ID,
		Name:    user.Name,
		Age:     user.Age,
		Phone:   user.Phone,
		Address: user.Address,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		Photo:   a.images.URL(a.images.Resolve(user.ProfilePhoto, images.ClassUser)),
	}
}

func (a *App) gardenInfo(garden *models.Garden) GardenInfo {
	return GardenInfo{
		ID:            garden.ID,
		Name:          garden.Name,
		UserID:        garden.UserID,
		Photo:         a.images.URL(a.images.Resolve(garden.Photo, images.ClassGarden)),
		Species:       garden.Species,
		DaysToHarvest: garden.DaysToHarvest,
		ContactName:   garden.ContactName,
		Address:       garden.Address,
		ContactEmail:  garden.ContactEmail,
	}
}

func (a *App) gardenInfos(gardens []models.Garden) []GardenInfo {
	res := []GardenInfo{}
	for i := range gardens {
		res = append(res, a.gardenInfo(&gardens[i]))
	}
	return res
}

func (a *App) feedEntryInfo(entry *models.FeedEntry) FeedEntryInfo {
	return FeedEntryInfo{
		ID:          entry.FeedID,
		Photo:       a.images.URL(a.images.Resolve(entry.Photo, images.ClassGarden)),
		Description: entry.Description,
		PostedAt:    entry.PostedAt,
		UserName:    entry.UserName,
		GardenName:  entry.GardenName,
		Species:     entry.Species,
	}
}
