package constants

// 返回给界面的提示信息
const (
	MsgInvalidCredentials = "Email ou senha incorretos."
	MsgPasswordMismatch   = "As senhas não coincidem!"
	MsgRequiredFields     = "Preencha todos os campos obrigatórios!"
	MsgEmailTaken         = "Email já cadastrado."
	MsgAccessDenied       = "Acesso negado! Apenas administradores podem acessar esta página."
	MsgGardenNotFound     = "Horta não encontrada!"
	MsgLoginRequired      = "Você precisa estar logado."
	MsgRegistered         = "Cadastro realizado com sucesso! Faça login para continuar."
	MsgWelcome            = "Bem-vindo, %s!"
	MsgGardenCreated      = "Horta cadastrada com sucesso!"
	MsgGardenUpdated      = "Horta atualizada com sucesso!"
	MsgGardenDeleted      = "Horta excluída com sucesso!"
	MsgGardenPosted       = "Horta '%s' postada no feed!"
	MsgPhotoUpdated       = "Foto de perfil atualizada com sucesso!"
	MsgPhotoSaveFailed    = "Erro ao salvar a imagem: %v"
	MsgNoGardens          = "Ainda não cadastrou sua horta? Cadastre agora!"
	MsgEmptyFeed          = "Nenhuma postagem no feed ainda. Poste sua primeira horta!"
	MsgNoGardensAdmin     = "Nenhuma horta cadastrada ainda."
	MsgDefaultDescription = "Horta de %s"
)

const (
	MsgInvalidAge  = "Idade inválida."
	MsgInvalidDays = "Dias para colheita deve ser maior que zero."
)

const (
	MsgNotGardenOwner = "Você só pode editar as suas próprias hortas."
)
