package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jaythan-dev/projeto-concessionaria/utils"
)

// parseID 解析路径中的ID，非数字ID按不存在处理
func parseID(c *gin.Context, entity string) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.NotFound(c, entity+" not found")
		return 0, false
	}
	return id, true
}

// bindPayload 读取请求体，字段校验交给服务层
func bindPayload(c *gin.Context) (map[string]interface{}, bool) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequest(c, "Invalid JSON")
		return nil, false
	}
	return payload, true
}
