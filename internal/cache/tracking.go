package cache

import (
	"context"
	"fmt"
	"strings"
	"time"
)

const defaultTrackingCacheTTL = 30 * time.Second

// TrackingSnapshot 公共追踪查询的缓存快照
// 仅包含对外可见字段，避免泄露客户信息
type TrackingSnapshot struct {
	ContainerID     string              `json:"container_id"`
	ContainerPath   string              `json:"container_path"`
	Status          string              `json:"status"`
	ShipmentType    string              `json:"shipment_type"`
	CurrentLocation string              `json:"current_location"`
	Departure       string              `json:"departure_location"`
	Destination     string              `json:"destination_location"`
	DepartureDate   time.Time           `json:"departure_date"`
	ETA             time.Time           `json:"eta"`
	History         []TrackingMovement  `json:"history,omitempty"`
	CachedAt        int64               `json:"cached_at"`
}

// TrackingMovement 追踪历史中的一次位置变更
type TrackingMovement struct {
	Location   string    `json:"location"`
	Status     string    `json:"status"`
	RecordedAt time.Time `json:"recorded_at"`
}

func trackingKey(containerID string) string {
	return fmt.Sprintf("tracking:%s", strings.ToUpper(strings.TrimSpace(containerID)))
}

// GetTrackingSnapshot 获取追踪缓存
func GetTrackingSnapshot(ctx context.Context, containerID string) (*TrackingSnapshot, bool, error) {
	if strings.TrimSpace(containerID) == "" {
		return nil, false, nil
	}
	var snapshot TrackingSnapshot
	hit, err := GetJSON(ctx, trackingKey(containerID), &snapshot)
	if err != nil || !hit {
		return nil, hit, err
	}
	return &snapshot, true, nil
}

// SetTrackingSnapshot 写入追踪缓存
func SetTrackingSnapshot(ctx context.Context, snapshot *TrackingSnapshot, ttl time.Duration) error {
	if snapshot == nil || strings.TrimSpace(snapshot.ContainerID) == "" {
		return nil
	}
	if ttl <= 0 {
		ttl = defaultTrackingCacheTTL
	}
	snapshot.CachedAt = time.Now().Unix()
	return SetJSON(ctx, trackingKey(snapshot.ContainerID), snapshot, ttl)
}

// DelTrackingSnapshot 删除追踪缓存；状态或位置变更后必须调用
func DelTrackingSnapshot(ctx context.Context, containerID string) error {
	if strings.TrimSpace(containerID) == "" {
		return nil
	}
	return Del(ctx, trackingKey(containerID))
}
