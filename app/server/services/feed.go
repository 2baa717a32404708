package services

import (
	"campo-cidade/app/server/constants"
	"campo-cidade/app/server/models"
	"context"
	"fmt"
	"strings"
)

// PostToFeed 记录菜园当前照片路径的快照；没有描述时使用 "Horta de <发布者>"
func (s *Services) PostToFeed(ctx context.Context, gardenID uint, posterID uint, description *string) (*models.FeedPost, *models.Garden, error) {
	garden, err := s.GetGarden(ctx, gardenID)
	if err != nil {
		return nil, nil, err
	}
	poster, err := s.Profile(ctx, posterID)
	if err != nil {
		return nil, nil, err
	}

	if description == nil || strings.TrimSpace(*description) == "" {
		d := fmt.Sprintf(constants.MsgDefaultDescription, poster.Name)
		description = &d
	}

	post := models.FeedPost{
		GardenID:    garden.ID,
		UserID:      poster.ID,
		Photo:       garden.Photo,
		Description: description,
		PostedAt:    s.now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&post).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to create feed post: %w", err)
	}

	return &post, garden, nil
}

// ListFeed 按发布时间倒序返回全部动态，不分页
func (s *Services) ListFeed(ctx context.Context) ([]models.FeedEntry, error) {
	entries := []models.FeedEntry{}
	if err := s.db.WithContext(ctx).
		Table("feed_hortas").
		Select("feed_hortas.feed_id AS feed_id, feed_hortas.foto AS foto, feed_hortas.descricao AS descricao, " +
			"feed_hortas.data_postagem AS data_postagem, users.nome AS nome, " +
			"hortas.nome_horta AS nome_horta, hortas.especie AS especie").
		Joins("JOIN users ON feed_hortas.usuario_id = users.user_id").
		Joins("JOIN hortas ON feed_hortas.horta_id = hortas.horta_id").
		Order("feed_hortas.data_postagem DESC").
		Scan(&entries).Error; err != nil {
		return nil, fmt.Errorf("failed to get feed: %w", err)
	}

	return entries, nil
}
