// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeyValidationInvalid = "validation.invalid"

	// Catalog
	KeyShopNotFound    = "shop.not_found"
	KeyProductNotFound = "product.not_found"
	KeyProductDeleted  = "product.deleted"
	KeyProductInOrders = "product.in_orders"
	KeySetNotFound     = "set.not_found"

	// Cart
	KeyCartItemAdded   = "cart.item_added"
	KeyCartItemRemoved = "cart.item_removed"

	// Orders & checkout
	KeyOrderNotFound      = "order.not_found"
	KeyOrderFinalized     = "order.finalized"
	KeyOrderAlreadyFinal  = "order.already_final"
	KeyCheckoutBatchEmpty = "checkout.batch_empty"

	// Events
	KeyEventNotFound  = "event.not_found"
	KeyEventCreated   = "event.created"
	KeyEventStartDate = "event.start_date_required"

	// Consult
	KeyConsultPresetNotFound = "consult.preset_not_found"
)

var japanese = map[string]string{
	KeyValidationInvalid: "%s の内容が正しくありません",

	KeyShopNotFound:    "店舗が見つかりません",
	KeyProductNotFound: "商品が見つかりません",
	KeyProductDeleted:  "商品を削除しました",
	KeyProductInOrders: "注文で使用中の商品は削除できません",
	KeySetNotFound:     "セットが見つかりません",

	KeyCartItemAdded:   "カートに追加しました",
	KeyCartItemRemoved: "カートから削除しました",

	KeyOrderNotFound:      "注文が見つかりません",
	KeyOrderFinalized:     "注文を確定しました",
	KeyOrderAlreadyFinal:  "この注文はすでに確定済みです",
	KeyCheckoutBatchEmpty: "確定待ちのセット注文はありません",

	KeyEventNotFound:  "イベントが見つかりません",
	KeyEventCreated:   "イベントを登録しました",
	KeyEventStartDate: "スポット（期間/単発）のイベントは開始日が必要です",

	KeyConsultPresetNotFound: "相談メニューが見つかりません",
}

var english = map[string]string{
	KeyValidationInvalid: "Invalid %s",

	KeyShopNotFound:    "Shop not found",
	KeyProductNotFound: "Product not found",
	KeyProductDeleted:  "Product deleted",
	KeyProductInOrders: "Product is referenced by orders and cannot be deleted",
	KeySetNotFound:     "Set not found",

	KeyCartItemAdded:   "Added to cart",
	KeyCartItemRemoved: "Removed from cart",

	KeyOrderNotFound:      "Order not found",
	KeyOrderFinalized:     "Order finalized",
	KeyOrderAlreadyFinal:  "Order is already finalized",
	KeyCheckoutBatchEmpty: "No bundle orders awaiting finalization",

	KeyEventNotFound:  "Event not found",
	KeyEventCreated:   "Event created",
	KeyEventStartDate: "Spot events require a start date",

	KeyConsultPresetNotFound: "Consult preset not found",
}
