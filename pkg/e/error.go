package e

// Business error codes. User-facing messages are Portuguese, matching
// the storefront locale.
const (
	SUCCESS        = 0
	ERROR          = 1
	INVALID_PARAMS = 2

	ERROR_CUSTOMER_EXISTS     = 20001
	ERROR_CUSTOMER_NOT_EXISTS = 20002
	ERROR_INVALID_PHONE       = 20003
	ERROR_MISSING_FIELDS      = 20004

	ERROR_PRODUCT_NOT_EXISTS = 30001
	ERROR_IMAGE_NOT_FOUND    = 30002

	ERROR_CART_EMPTY      = 40001
	ERROR_NOT_IDENTIFIED  = 40002
	ERROR_ORDER_REFERENCE = 40003
	ERROR_PAYMENT_METHOD  = 40004
)

var MsgFlags = map[int]string{
	SUCCESS:        "sucesso",
	ERROR:          "falha",
	INVALID_PARAMS: "parâmetros inválidos",

	ERROR_CUSTOMER_EXISTS:     "já existe um cliente com este telefone",
	ERROR_CUSTOMER_NOT_EXISTS: "cliente não encontrado",
	ERROR_INVALID_PHONE:       "telefone inválido: use 11 dígitos, ex: 85985417565",
	ERROR_MISSING_FIELDS:      "preencha todos os campos para cadastrar",

	ERROR_PRODUCT_NOT_EXISTS: "produto não encontrado",
	ERROR_IMAGE_NOT_FOUND:    "imagem não encontrada",

	ERROR_CART_EMPTY:      "seu carrinho está vazio",
	ERROR_NOT_IDENTIFIED:  "você precisa estar cadastrado e identificado",
	ERROR_ORDER_REFERENCE: "pedido referencia cliente ou produto inexistente",
	ERROR_PAYMENT_METHOD:  "informe a forma de pagamento",
}

func GetMsg(code int) string {
	msg, ok := MsgFlags[code]
	if ok {
		return msg
	}
	return MsgFlags[ERROR]
}
