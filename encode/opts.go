package encode

type EncodeOption func(*EncState)

// EncodeColors renders the output with the given colors; nil disables
// colors.
func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) {
		if c == nil {
			es.Color = nil
			return
		}
		es.Color = c.Color
	}
}
