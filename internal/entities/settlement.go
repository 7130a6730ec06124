package entities

// SettlementClass закрытый набор вариантов расчёта по заказу. Вычисляется один раз
// из флагов заказа, дальше код работает только со switch по классу.
type SettlementClass string

const (
	// ClassCollected водитель собрал наличные с покупателя.
	ClassCollected SettlementClass = "collected"
	// ClassDriverAdvanced водитель заплатил клиенту из своего кармана.
	ClassDriverAdvanced SettlementClass = "driver_advanced"
	// ClassCompanyPrepaid компания заплатила клиенту из кассы до доставки.
	ClassCompanyPrepaid SettlementClass = "company_prepaid"
	// ClassThirdParty заказ доставлял сторонний курьер, деньги приходят от него.
	ClassThirdParty SettlementClass = "third_party"
)

func (c SettlementClass) String() string {
	return string(c)
}

// Settlement суммы по одному заказу, из которых строятся проводки и строки выписок.
type Settlement struct {
	Class SettlementClass

	// CustomerFeeShare часть стоимости доставки, которую платит покупатель.
	CustomerFeeShare Money
	// CashCollected наличные, которые водитель (или третья сторона) собрал с покупателя.
	CashCollected Money
	// AdvancedRefund сколько компания возвращает водителю за аванс клиенту.
	AdvancedRefund Money
	// ClientDue сколько компания должна клиенту за заказ.
	ClientDue Money
	// ClientCharge сколько клиент должен компании за авансированный заказ.
	ClientCharge Money
	// Income доход компании (стоимость доставки).
	Income Money
	// ThirdPartyFee комиссия стороннего курьера.
	ThirdPartyFee Money
	// ThirdPartyDue сколько третья сторона должна перевести компании.
	ThirdPartyDue Money
}
