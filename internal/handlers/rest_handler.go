package handlers

import (
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"strconv"

	"directchat/internal/errs"
	"directchat/internal/models"
	"directchat/internal/msgs"
	"directchat/internal/services"
	"directchat/internal/utils"

	"github.com/gin-gonic/gin"
)

type RestHandler struct {
	accountService     *services.AccountService
	messagingService   *services.MessagingService
	fileManagerService *services.FileManagerService
}

func NewRestHandler(
	accountService *services.AccountService,
	messagingService *services.MessagingService,
	fileManagerService *services.FileManagerService,
) *RestHandler {
	return &RestHandler{
		accountService:     accountService,
		messagingService:   messagingService,
		fileManagerService: fileManagerService,
	}
}

func (rh *RestHandler) Register(ctx *gin.Context) {
	var user models.User
	if err := ctx.BindJSON(&user); err != nil {
		rh.fail(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	created, registerErrs := rh.accountService.Register(&user)
	if len(registerErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  models.ErrorsToStrings(registerErrs),
		})
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgUserCreatedSuccessfully,
		Data:    created,
	})
}

func (rh *RestHandler) Login(ctx *gin.Context) {
	var loginData models.LoginRequestBody
	if err := ctx.BindJSON(&loginData); err != nil {
		log.Println("Error login data json binding:", err)
		rh.fail(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	loginResponse, loginErrs := rh.accountService.Login(&loginData)
	if len(loginErrs) > 0 {
		ctx.AbortWithStatusJSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: msgs.MsgOperationFailed,
			Errors:  models.ErrorsToStrings(loginErrs),
		})
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    loginResponse,
	})
}

func (rh *RestHandler) GetUsers(ctx *gin.Context) {
	users, err := rh.accountService.Users(utils.BearerToken(ctx))
	if err != nil {
		rh.fail(ctx, errs.StatusOf(err), err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    users,
	})
}

func (rh *RestHandler) GetSingleUser(ctx *gin.Context) {
	id, ok := rh.uintParam(ctx, "id")
	if !ok {
		return
	}

	user, err := rh.accountService.User(utils.BearerToken(ctx), id)
	if err != nil {
		rh.fail(ctx, errs.StatusOf(err), err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    user,
	})
}

func (rh *RestHandler) UploadUserProfilePhoto(ctx *gin.Context) {
	caller, err := rh.accountService.Identify(utils.BearerToken(ctx))
	if err != nil {
		rh.fail(ctx, errs.StatusOf(err), err)
		return
	}

	file, err := ctx.FormFile("profile_photo")
	if err != nil {
		rh.fail(ctx, http.StatusBadRequest, errs.ErrNoFileUploaded)
		return
	}

	src, err := file.Open()
	if err != nil {
		rh.fail(ctx, http.StatusInternalServerError, errs.ErrUnableToUploadFile)
		return
	}
	defer src.Close()

	fileExt := filepath.Ext(file.Filename)
	fileName := fmt.Sprintf("user_profile_photo_%d%s", caller.ID, fileExt)

	url, err := rh.fileManagerService.UploadUserProfilePhoto(fileName, src, file.Size, file.Header.Get("Content-Type"))
	if err != nil {
		rh.fail(ctx, http.StatusInternalServerError, errs.ErrUnableToUploadFile)
		return
	}

	if err := rh.accountService.UpdateUserProfilePhoto(caller.ID, url); err != nil {
		rh.fail(ctx, errs.StatusOf(err), err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    url,
	})
}

func (rh *RestHandler) SendMessage(ctx *gin.Context) {
	var body models.SendMessageRequestBody
	if err := ctx.ShouldBindJSON(&body); err != nil {
		rh.fail(ctx, http.StatusBadRequest, errs.ErrInvalidRequestBody)
		return
	}

	message, err := rh.messagingService.Send(utils.BearerToken(ctx), &body)
	if err != nil {
		rh.fail(ctx, errs.StatusOf(err), err)
		return
	}

	ctx.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: msgs.MsgMessageSent,
		Data:    message,
	})
}

func (rh *RestHandler) GetConversation(ctx *gin.Context) {
	otherUserID, ok := rh.uintParam(ctx, "userId")
	if !ok {
		return
	}

	messages, err := rh.messagingService.Conversation(utils.BearerToken(ctx), otherUserID)
	if err != nil {
		rh.fail(ctx, errs.StatusOf(err), err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    messages,
	})
}

func (rh *RestHandler) GetConversations(ctx *gin.Context) {
	conversations, err := rh.messagingService.Conversations(utils.BearerToken(ctx))
	if err != nil {
		rh.fail(ctx, errs.StatusOf(err), err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgOperationSuccessful,
		Data:    conversations,
	})
}

func (rh *RestHandler) MarkMessageRead(ctx *gin.Context) {
	messageID, ok := rh.uintParam(ctx, "id")
	if !ok {
		return
	}

	message, err := rh.messagingService.MarkRead(utils.BearerToken(ctx), messageID)
	if err != nil {
		rh.fail(ctx, errs.StatusOf(err), err)
		return
	}

	ctx.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: msgs.MsgMessageMarkedAsRead,
		Data:    message,
	})
}

func (rh *RestHandler) uintParam(ctx *gin.Context, name string) (uint, bool) {
	raw := ctx.Param(name)
	parsed, err := strconv.Atoi(raw)
	if err != nil || parsed < 1 {
		rh.fail(ctx, http.StatusBadRequest, errs.ErrInvalidParams)
		return 0, false
	}
	return uint(parsed), true
}

func (rh *RestHandler) fail(ctx *gin.Context, status int, err error) {
	ctx.AbortWithStatusJSON(status, models.Response{
		Success: false,
		Message: msgs.MsgOperationFailed,
		Errors:  []string{err.Error()},
	})
}
