package utility

import (
	"encoding/json"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ConvertStruct chuyển đổi một struct sang struct khác
// Parameters:
//   - source: Struct nguồn cần chuyển đổi
//   - target: Con trỏ đến struct đích
//
// Returns:
//   - interface{}: Struct đích đã được chuyển đổi
//   - error: Lỗi nếu có
func ConvertStruct(source interface{}, target interface{}) (interface{}, error) {
	// Chuyển source thành JSON
	jsonData, err := json.Marshal(source)
	if err != nil {
		return nil, err
	}

	// Chuyển JSON thành target struct
	err = json.Unmarshal(jsonData, target)
	if err != nil {
		return nil, err
	}

	return target, nil
}

// Contains kiểm tra một slice string có chứa giá trị cho trước không
func Contains(slice []string, value string) bool {
	for _, item := range slice {
		if item == value {
			return true
		}
	}
	return false
}

// String2ObjectID chuyển string sang primitive.ObjectID.
// Trả về NilObjectID nếu string không hợp lệ - caller phải validate trước.
func String2ObjectID(s string) primitive.ObjectID {
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return primitive.NilObjectID
	}
	return id
}

// P2Int64 parse string sang int64, trả về 0 nếu lỗi
func P2Int64(s string) int64 {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// ToMap chuyển struct sang bson.M thông qua bson marshal/unmarshal.
// Dùng để build update data từ DTO, giữ đúng bson tag của struct.
func ToMap(source interface{}) (bson.M, error) {
	data, err := bson.Marshal(source)
	if err != nil {
		return nil, err
	}

	var result bson.M
	if err := bson.Unmarshal(data, &result); err != nil {
		return nil, err
	}

	return result, nil
}
