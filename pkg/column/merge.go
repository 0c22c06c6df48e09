package column

// MergeParameters reconciles system-default and user-supplied column
// options. A nil side short-circuits to the other; otherwise the merge is
// recursive: override leaves win key-by-key, and nested mappings shared by
// both sides merge key-wise rather than being replaced wholesale.
func MergeParameters(defaults, overrides map[string]any) map[string]any {
	if defaults == nil && overrides == nil {
		return map[string]any{}
	}
	if defaults == nil {
		return overrides
	}
	if overrides == nil {
		return defaults
	}
	merged := make(map[string]any, len(defaults)+len(overrides))
	for k, v := range defaults {
		merged[k] = v
	}
	for k, v := range overrides {
		ov, isMap := v.(map[string]any)
		dv, hadMap := merged[k].(map[string]any)
		if isMap && hadMap {
			merged[k] = MergeParameters(dv, ov)
			continue
		}
		merged[k] = v
	}
	return merged
}
