package router

import "github.com/gin-gonic/gin"

// APIModule 一个资源一个模块，统一挂到 /api 下
type APIModule interface{ MountAPI(*gin.RouterGroup) }

// MountAll 按传入顺序挂载。依赖全部走构造注入，不需要全局注册表
func MountAll(api *gin.RouterGroup, mods ...APIModule) {
	for _, m := range mods {
		m.MountAPI(api)
	}
}
