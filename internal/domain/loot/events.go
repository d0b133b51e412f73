package loot

import (
	"bytes"
	"encoding/json"

	"github.com/inferenco/cedra-randomness-demos/internal/domain/shared"
	dnderr "github.com/inferenco/cedra-randomness-demos/internal/errors"
)

// dropData is the event payload emitted per item by open_loot_box. Some
// contract versions emit a single event carrying an items list instead.
type dropData struct {
	ItemID *shared.MoveInt `json:"item_id"`
	Rarity *shared.MoveInt `json:"rarity"`
	Power  *shared.MoveInt `json:"power"`
	Items  json.RawMessage `json:"items"`
}

// DecodeDrops extracts items from transaction event payloads, in order.
// Payloads without the three item fields are skipped. A payload that carries
// them with bad values is a parse failure.
func DecodeDrops(payloads []json.RawMessage) ([]Item, error) {
	var items []Item
	for i, payload := range payloads {
		var data dropData
		if err := json.Unmarshal(payload, &data); err != nil {
			// events of other shapes (arrays, scalars) are not drops
			if _, ok := err.(*json.UnmarshalTypeError); ok {
				continue
			}
			return nil, dnderr.WrapWithCode(err, dnderr.CodeParse, "decode event payload").
				WithMeta("event_index", i)
		}

		decoded, err := data.items()
		if err != nil {
			return nil, err.WithMeta("event_index", i)
		}
		items = append(items, decoded...)
	}
	return items, nil
}

func (d dropData) items() ([]Item, *dnderr.Error) {
	var out []Item
	if item, ok, err := d.item(); err != nil {
		return nil, err
	} else if ok {
		out = append(out, item)
	}

	nested, err := d.nested()
	if err != nil {
		return nil, err
	}
	for _, n := range nested {
		item, ok, err := n.item()
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// nested decodes the items list. Anything other than an array is ignored, as
// are elements that are not objects.
func (d dropData) nested() ([]dropData, *dnderr.Error) {
	raw := bytes.TrimSpace(d.Items)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, nil
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(raw, &elems); err != nil {
		return nil, dnderr.WrapWithCode(err, dnderr.CodeParse, "decode items list")
	}

	out := make([]dropData, 0, len(elems))
	for i, elem := range elems {
		var data dropData
		if err := json.Unmarshal(elem, &data); err != nil {
			if _, ok := err.(*json.UnmarshalTypeError); ok {
				continue
			}
			return nil, dnderr.WrapWithCode(err, dnderr.CodeParse, "decode items list").
				WithMeta("item_index", i)
		}
		out = append(out, data)
	}
	return out, nil
}

func (d dropData) item() (Item, bool, *dnderr.Error) {
	if d.ItemID == nil || d.Rarity == nil || d.Power == nil {
		return Item{}, false, nil
	}

	rarity := Rarity(d.Rarity.Int())
	if !rarity.Valid() {
		return Item{}, false, dnderr.Parsef("rarity %d out of range", rarity)
	}

	return Item{
		ItemID: d.ItemID.Int(),
		Rarity: rarity,
		Power:  d.Power.Int(),
	}, true, nil
}
