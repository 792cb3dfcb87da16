// internal/services/consult_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/okaimono/shotengai-backend/internal/models"
)

// ShopFinder is the slice of the catalog the consult router needs.
type ShopFinder interface {
	ShopByName(name string) (*models.Shop, error)
	GetShop(id uuid.UUID) (*models.Shop, error)
}

// Preset is a fixed consultation scenario: a key, the shop it routes to, a
// skills blurb and the fill-in prompts that shop wants answered.
type Preset struct {
	Key         string   `json:"key"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	ShopName    string   `json:"shop_name"`
	Skills      string   `json:"skills"`
	Questions   []string `json:"questions"`
}

// The preset table is a closed set; unmapped keys fall back to the listing.
var consultPresets = []Preset{
	{
		Key:         "sashimi",
		Title:       "刺身盛り、予算で作れます",
		Description: "人数・予算・苦手を言うだけで、ちょうどいい盛り合わせに。",
		ShopName:    "魚竹鮮魚店",
		Skills:      "予算に合わせた刺身盛り・さく取り・皮引き",
		Questions:   []string{"何人前ですか？", "ご予算はいくらぐらいですか？", "苦手なネタはありますか？", "受け取り時間はいつ頃ですか？"},
	},
	{
		Key:         "bbq",
		Title:       "BBQ用に、肉と野菜まとめて",
		Description: "焼きやすい厚さに切って、人数分まとめてご用意。",
		ShopName:    "肉のマルフク",
		Skills:      "BBQ向けカット・下味付け・人数分の見積もり",
		Questions:   []string{"何人前ですか？", "ご予算はいくらぐらいですか？", "焼き場はコンロですか炭火ですか？", "受け取り時間はいつ頃ですか？"},
	},
	{
		Key:         "sasagaki",
		Title:       "ささがき、必要な分だけ",
		Description: "用途と量を言うだけ。太さも合わせます。",
		ShopName:    "八百辰",
		Skills:      "ささがき・千切りなどの下ごしらえ",
		Questions:   []string{"何に使いますか？", "量はどれぐらい必要ですか？", "太さのご希望はありますか？"},
	},
	{
		Key:         "prep",
		Title:       "皮むき＆カット済みで",
		Description: "じゃがいも・にんじん・玉ねぎを調理しやすい形に。",
		ShopName:    "やおや青木",
		Skills:      "皮むき・カット・面取りなどの下処理",
		Questions:   []string{"どの野菜をどれぐらいですか？", "切り方のご希望はありますか？", "受け取り時間はいつ頃ですか？"},
	},
	{
		Key:         "okazu",
		Title:       "今夜のおかず、提案して",
		Description: "好みと予算を言えば、プロが提案します。",
		ShopName:    "惣菜こばやし",
		Skills:      "予算内のおかず提案・詰め合わせ",
		Questions:   []string{"何人分ですか？", "ご予算はいくらぐらいですか？", "苦手な食材・アレルギーはありますか？"},
	},
	{
		Key:         "smoothie",
		Title:       "スムージー用フルーツおまかせ",
		Description: "甘さと色味の好みに合わせて果物を見繕います。",
		ShopName:    "フルーツパーラー山田",
		Skills:      "熟度を見た果物選び・スムージー向けカット",
		Questions:   []string{"甘めとさっぱり、どちらがお好みですか？", "何杯分ぐらい作りますか？", "アレルギーはありますか？"},
	},
}

// ConsultService routes preset keys to shops and composes the pre-filled
// consultation message. Composition is the sole output; dispatch to a
// messaging channel happens elsewhere.
type ConsultService struct {
	shops ShopFinder
}

func NewConsultService(shops ShopFinder) *ConsultService {
	return &ConsultService{shops: shops}
}

func (s *ConsultService) Presets() []Preset {
	return consultPresets
}

func presetByKey(key string) *Preset {
	for i := range consultPresets {
		if consultPresets[i].Key == key {
			return &consultPresets[i]
		}
	}
	return nil
}

type ResolvedPreset struct {
	Preset Preset       `json:"preset"`
	Shop   *models.Shop `json:"shop"`
}

// Resolve maps a preset key to its shop by exact name lookup. An unmapped
// key or an absent shop yields ErrPresetNotRouted so callers can fall back
// to the generic preset listing instead of failing.
func (s *ConsultService) Resolve(key string) (*ResolvedPreset, error) {
	preset := presetByKey(key)
	if preset == nil {
		return nil, ErrPresetNotRouted
	}

	shop, err := s.shops.ShopByName(preset.ShopName)
	if errors.Is(err, ErrShopNotFound) {
		return nil, ErrPresetNotRouted
	}
	if err != nil {
		return nil, err
	}

	return &ResolvedPreset{Preset: *preset, Shop: shop}, nil
}

type ComposeRequest struct {
	ShopID      uuid.UUID `json:"shop_id" validate:"required"`
	PresetKey   string    `json:"preset_key,omitempty"`
	ProductName string    `json:"product_name,omitempty"`
	Quantity    int       `json:"quantity,omitempty" validate:"omitempty,min=1"`
	SetName     string    `json:"set_name,omitempty"`
	OrderID     string    `json:"order_id,omitempty"`
	Note        string    `json:"note,omitempty"`
}

type ComposedMessage struct {
	Shop    *models.Shop `json:"shop"`
	Message string       `json:"message"`
}

// Compose builds the multi-line consultation text: greeting, the preset's
// skills section when the key is known, any supplied purchase context, and
// the preset's fill-in prompts.
func (s *ConsultService) Compose(req *ComposeRequest) (*ComposedMessage, error) {
	shop, err := s.shops.GetShop(req.ShopID)
	if err != nil {
		return nil, err
	}

	preset := presetByKey(req.PresetKey)

	var b strings.Builder
	fmt.Fprintf(&b, "%sさん、こんにちは！\n", shop.Name)

	if preset != nil {
		fmt.Fprintf(&b, "\n【%s】\n%s\n", preset.Title, preset.Skills)
	}

	if req.ProductName != "" {
		fmt.Fprintf(&b, "\n商品：%s\n", req.ProductName)
		if req.Quantity > 0 {
			fmt.Fprintf(&b, "数量：%d\n", req.Quantity)
		}
	}
	if req.SetName != "" {
		fmt.Fprintf(&b, "セット：%s\n", req.SetName)
	}
	if req.OrderID != "" {
		fmt.Fprintf(&b, "注文番号：%s\n", req.OrderID)
	}
	if req.Note != "" {
		fmt.Fprintf(&b, "\nメモ：%s\n", req.Note)
	}

	if preset != nil && len(preset.Questions) > 0 {
		b.WriteString("\n――― 以下を埋めてお送りください ―――\n")
		for _, q := range preset.Questions {
			fmt.Fprintf(&b, "・%s：\n", q)
		}
	}

	return &ComposedMessage{Shop: shop, Message: b.String()}, nil
}
