package handler

import (
	"bytes"
	"context"

	"userhub/be/biz/model/convert"
	"userhub/be/biz/model/dto"
	"userhub/be/biz/model/errs"
	"userhub/be/biz/service/user"
	"userhub/be/biz/util/resp"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/common/json"
)

// Register 用户注册接口
//
//	@Tags			user
//	@Summary		用户注册接口
//	@Description	注册新用户, email 唯一
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.RegisterReq	true	"register request body"
//	@Success		200	{object}	dto.RegisterResp
//	@Failure		400	{object}	dto.CommonResp
//	@Failure		500	{object}	dto.CommonResp
//	@Router			/api/register [POST]
func Register(ctx context.Context, c *app.RequestContext) {
	body, err := decodeBody(c)
	if err != nil {
		hlog.CtxNoticef(ctx, "Register decode body err: %v", err)
		resp.AbortWithErr(c, errs.InvalidBody)
		return
	}
	req, err := dto.NewRegisterReq(body)
	if err != nil {
		hlog.CtxNoticef(ctx, "NewRegisterReq err: %v", err)
		resp.AbortWithErr(c, errs.InvalidBody)
		return
	}

	if bizErr := user.NewDefault().Register(ctx, req.Name, req.Email, req.Password); bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.RegisterResp{CommonResp: resp.Common("registration successful")})
}

// Login 用户登录接口
//
//	@Tags			user
//	@Summary		用户登录接口
//	@Description	校验 email 与密码, 返回用户公开信息
//	@Accept			json
//	@Produce		json
//	@Param			req	body		dto.LoginReq	true	"login request body"
//	@Success		200	{object}	dto.LoginResp
//	@Failure		400	{object}	dto.CommonResp
//	@Failure		401	{object}	dto.CommonResp
//	@Failure		500	{object}	dto.CommonResp
//	@Router			/api/login [POST]
func Login(ctx context.Context, c *app.RequestContext) {
	body, err := decodeBody(c)
	if err != nil {
		hlog.CtxNoticef(ctx, "Login decode body err: %v", err)
		resp.AbortWithErr(c, errs.InvalidBody)
		return
	}
	req, err := dto.NewLoginReq(body)
	if err != nil {
		hlog.CtxNoticef(ctx, "NewLoginReq err: %v", err)
		resp.AbortWithErr(c, errs.InvalidBody)
		return
	}

	u, bizErr := user.NewDefault().Authenticate(ctx, req.Email, req.Password)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, dto.LoginResp{
		CommonResp: resp.Common("login successful"),
		User:       convert.PublicUserToInfo(*u),
	})
}

// ListUsers 用户列表接口
//
//	@Tags			user
//	@Summary		用户列表接口
//	@Description	返回全部用户, 不含密码
//	@Produce		json
//	@Success		200	{array}		dto.UserInfo
//	@Failure		500	{object}	dto.CommonResp
//	@Router			/api/users [GET]
func ListUsers(ctx context.Context, c *app.RequestContext) {
	users, bizErr := user.NewDefault().ListUsers(ctx)
	if bizErr != nil {
		resp.FailResp(c, bizErr)
		return
	}

	resp.SuccessResp(c, convert.PublicUsersToInfos(users))
}

// decodeBody returns the untyped JSON body; no body decodes to nil.
func decodeBody(c *app.RequestContext) (dto.Body, error) {
	raw := bytes.TrimSpace(c.Request.Body())
	if len(raw) == 0 {
		return nil, nil
	}

	var body any
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, err
	}
	return body, nil
}
