package contentService

import (
	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// mergePatch overlays the JSON object patch onto current and decodes the
// result into out. Objects merge key by key at every depth; arrays, scalars
// and nulls in the patch replace the existing value.
func mergePatch(current interface{}, patch []byte, out interface{}) error {
	base, err := json.Marshal(current)
	if err != nil {
		return err
	}

	var baseDoc map[string]interface{}
	if err := json.Unmarshal(base, &baseDoc); err != nil {
		return err
	}

	var patchDoc map[string]interface{}
	if err := json.Unmarshal(patch, &patchDoc); err != nil {
		return err
	}

	merged, err := json.Marshal(mergeObjects(baseDoc, patchDoc))
	if err != nil {
		return err
	}

	return json.Unmarshal(merged, out)
}

func mergeObjects(dst, src map[string]interface{}) map[string]interface{} {
	if dst == nil {
		dst = make(map[string]interface{}, len(src))
	}
	for k, v := range src {
		if sv, ok := v.(map[string]interface{}); ok {
			if dv, ok := dst[k].(map[string]interface{}); ok {
				dst[k] = mergeObjects(dv, sv)
				continue
			}
		}
		dst[k] = v
	}
	return dst
}
